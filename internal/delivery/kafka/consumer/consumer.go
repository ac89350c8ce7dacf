package consumer

import (
	"context"
	"sync"

	"github.com/IBM/sarama"
	"github.com/vogiaan1904/barberqueue/internal/delivery/kafka"
	"github.com/vogiaan1904/barberqueue/internal/service"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

var topics = []string{kafka.TopicBarberAvailabilityChanged, kafka.TopicBarbershopConfigUpdated}

type Consumer struct {
	consGr sarama.ConsumerGroup
	qSvc   service.QueueService
	l      logger.Logger
	wg     sync.WaitGroup
}

func NewConsumer(
	consGr sarama.ConsumerGroup,
	qSvc service.QueueService,
	l logger.Logger,
) *Consumer {
	return &Consumer{
		consGr: consGr,
		qSvc:   qSvc,
		l:      l,
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	switch msg.Topic {
	case kafka.TopicBarberAvailabilityChanged:
		return c.HandleBarberAvailabilityChanged(ctx, msg)
	case kafka.TopicBarbershopConfigUpdated:
		return c.HandleBarbershopConfigUpdated(ctx, msg)
	default:
		c.l.Warn(ctx, "Unknown topic", "topic", msg.Topic)
		return nil
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	c.wg.Go(func() {
		for {
			if err := c.consGr.Consume(ctx, topics, c); err != nil {
				c.l.Errorf(ctx, "delivery.kafka.consumer.Start: %v", err)
			}

			if ctx.Err() != nil {
				c.l.Infof(ctx, "delivery.kafka.consumer.Start: %v", ctx.Err())
				return
			}
		}
	})

	c.wg.Go(func() {
		for err := range c.consGr.Errors() {
			c.l.Errorf(ctx, "delivery.kafka.consumer.Start: %v", err)
		}
	})

	c.l.Infof(ctx, "Consumer is consuming topics: %v", topics)
	return nil
}

func (c *Consumer) Close() error {
	if err := c.consGr.Close(); err != nil {
		return err
	}

	c.wg.Wait()
	return nil
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	c.l.Debug(context.Background(), "Consumer group session started")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	c.l.Debug(context.Background(), "Consumer group session ended")
	return nil
}

// ConsumeClaim marks every message it has handled. Messages rejected by the
// queue (unknown shop, invalid config) are logged and skipped so a poison
// record cannot stall the partition; infrastructure failures are left unmarked
// and will be redelivered after a rebalance.
func (c *Consumer) ConsumeClaim(ss sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}

			if err := c.processMessage(ss.Context(), message); err != nil {
				c.l.Error(ss.Context(), "delivery.kafka.consumer.ConsumeClaim",
					"error", err,
					"topic", message.Topic,
					"offset", message.Offset,
				)
				if !shouldSkip(err) {
					continue
				}
			}

			ss.MarkMessage(message, "")

		case <-ss.Context().Done():
			return nil
		}
	}
}
