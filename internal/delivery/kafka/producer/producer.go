package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	kafka "github.com/vogiaan1904/barberqueue/internal/delivery/kafka"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/monitoring"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

type Producer interface {
	PublishQueueEvent(ctx context.Context, event models.QueueEvent) error
	Close() error
}

type implProducer struct {
	l    logger.Logger
	prod sarama.SyncProducer
}

func NewProducer(prod sarama.SyncProducer, l logger.Logger) Producer {
	return &implProducer{
		l:    l,
		prod: prod,
	}
}

func (p *implProducer) PublishQueueEvent(ctx context.Context, event models.QueueEvent) error {
	topic, err := kafka.TopicFor(event.Type)
	if err != nil {
		p.l.Errorf(ctx, "delivery.kafka.producer.PublishQueueEvent: %v", err)
		return err
	}

	msg := kafka.NewQueueEventMessage(event)
	msg.Timestamp = time.Now()
	val, err := json.Marshal(msg)
	if err != nil {
		p.l.Errorf(ctx, "delivery.kafka.producer.PublishQueueEvent: %v", err)
		return err
	}

	_, _, err = p.prod.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.BarbershopID), // Partition by barbershop for ordering
		Value: sarama.ByteEncoder(val),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("timestamp"),
				Value: []byte(msg.Timestamp.Format(time.RFC3339)),
			},
		},
	})
	monitoring.RecordPublish(topic, err)

	return err
}

func (p *implProducer) Close() error {
	if err := p.prod.Close(); err != nil {
		return err
	}

	return nil
}

type nopProducer struct{}

// NewNopProducer drops every event. Used when Kafka is disabled.
func NewNopProducer() Producer {
	return nopProducer{}
}

func (nopProducer) PublishQueueEvent(ctx context.Context, event models.QueueEvent) error {
	return nil
}

func (nopProducer) Close() error {
	return nil
}
