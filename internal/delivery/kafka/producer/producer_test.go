package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kafka "github.com/vogiaan1904/barberqueue/internal/delivery/kafka"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

func TestPublishQueueEvent(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	sp := mocks.NewSyncProducer(t, cfg)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var msg kafka.QueueEventMessage
		if err := json.Unmarshal(val, &msg); err != nil {
			return err
		}
		if msg.Type != "called" || msg.EntryID != "e1" || msg.BarberID != "x" {
			return errors.New("unexpected payload")
		}
		if msg.Timestamp.IsZero() {
			return errors.New("publish timestamp not set")
		}
		return nil
	})
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducer(sp, logger.InitializeTestZapLogger())
	ctx := context.Background()

	err := p.PublishQueueEvent(ctx, models.QueueEvent{
		Type:         models.EventCalled,
		BarbershopID: "shop",
		EntryID:      "e1",
		BarberID:     "x",
		OccurredAt:   time.Now(),
	})
	require.NoError(t, err)

	err = p.PublishQueueEvent(ctx, models.QueueEvent{Type: models.EventLeft, BarbershopID: "shop"})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	err = p.PublishQueueEvent(ctx, models.QueueEvent{Type: "unknown"})
	assert.Error(t, err)

	require.NoError(t, p.Close())
}

func TestTopicFor(t *testing.T) {
	topic, err := kafka.TopicFor(models.EventNoShow)
	require.NoError(t, err)
	assert.Equal(t, kafka.TopicQueueNoShow, topic)
}

func TestNopProducer(t *testing.T) {
	p := NewNopProducer()
	assert.NoError(t, p.PublishQueueEvent(context.Background(), models.QueueEvent{Type: models.EventEntered}))
	assert.NoError(t, p.Close())
}
