package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/IBM/sarama"
	"github.com/vogiaan1904/barberqueue/internal/delivery/kafka"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/service"
)

var errMalformed = errors.New("malformed message")

func (c *Consumer) HandleBarberAvailabilityChanged(ctx context.Context, message *sarama.ConsumerMessage) error {
	var e kafka.BarberAvailabilityChangedEvent
	if err := json.Unmarshal(message.Value, &e); err != nil {
		c.l.Error(ctx, "delivery.kafka.consumer.HandleBarberAvailabilityChanged", "error", err)
		return errors.Join(errMalformed, err)
	}

	ctx = c.l.WithFields(ctx, "barber_id", e.BarberID, "barbershop_id", e.BarbershopID)
	c.l.Info(ctx, "Barber availability changed", "active", e.Active)

	if err := c.qSvc.SetBarberActive(ctx, service.SetBarberActiveInput{
		BarberID:     e.BarberID,
		BarbershopID: e.BarbershopID,
		Active:       e.Active,
	}); err != nil {
		c.l.Error(ctx, "delivery.kafka.consumer.HandleBarberAvailabilityChanged", "error", err)
		return err
	}

	return nil
}

func (c *Consumer) HandleBarbershopConfigUpdated(ctx context.Context, message *sarama.ConsumerMessage) error {
	var e kafka.BarbershopConfigUpdatedEvent
	if err := json.Unmarshal(message.Value, &e); err != nil {
		c.l.Error(ctx, "delivery.kafka.consumer.HandleBarbershopConfigUpdated", "error", err)
		return errors.Join(errMalformed, err)
	}

	ctx = c.l.WithFields(ctx, "barbershop_id", e.BarbershopID)
	c.l.Info(ctx, "Barbershop config updated",
		"average_service_minutes", e.AverageServiceMinutes,
		"max_queue_length", e.MaxQueueLength,
	)

	if err := c.qSvc.ConfigureShop(ctx, service.ConfigureShopInput{
		BarbershopID:          e.BarbershopID,
		AverageServiceMinutes: e.AverageServiceMinutes,
		MaxQueueLength:        e.MaxQueueLength,
	}); err != nil {
		c.l.Error(ctx, "delivery.kafka.consumer.HandleBarbershopConfigUpdated", "error", err)
		return err
	}

	return nil
}

// shouldSkip reports whether a failed message will never succeed on redelivery.
func shouldSkip(err error) bool {
	if errors.Is(err, errMalformed) {
		return true
	}
	return qerrors.IsExpected(err) && !errors.Is(err, qerrors.ErrBusy)
}
