package kafka_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/config"
	"go-hrms/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	msgs []kafkago.Message
	err  error
}

func (w *captureWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublish(t *testing.T) {
	t.Run("writes keyed message with headers", func(t *testing.T) {
		w := &captureWriter{}

		err := kafka.Publish(context.Background(), w, kafka.Event{
			Topic:         "hr.employee.lifecycle.v1",
			Key:           "42",
			EventType:     "employee_created",
			AggregateType: "employee",
			RequestID:     "REQ-1",
			Payload:       []byte(`{"employee_id":42}`),
		})

		require.NoError(t, err)
		require.Len(t, w.msgs, 1)
		msg := w.msgs[0]
		assert.Equal(t, "hr.employee.lifecycle.v1", msg.Topic)
		assert.Equal(t, []byte("42"), msg.Key)
		assert.Equal(t, "employee_created", headerValue(msg, "event_type"))
		assert.Equal(t, "employee", headerValue(msg, "aggregate_type"))
		assert.Equal(t, "REQ-1", headerValue(msg, "request_id"))
	})

	t.Run("request id header is optional", func(t *testing.T) {
		w := &captureWriter{}

		err := kafka.Publish(context.Background(), w, kafka.Event{Topic: "t", Key: "k", Payload: []byte("{}")})

		require.NoError(t, err)
		assert.Len(t, w.msgs[0].Headers, 2)
	})

	t.Run("writer error is returned", func(t *testing.T) {
		w := &captureWriter{err: errors.New("broker down")}

		err := kafka.Publish(context.Background(), w, kafka.Event{Topic: "t"})

		assert.EqualError(t, err, "broker down")
	})
}

func TestNewWriter(t *testing.T) {
	w := kafka.NewWriter(config.KafkaConfig{Brokers: []string{"localhost:9092"}})
	defer w.Close()

	assert.Equal(t, "localhost:9092", w.Addr.String())
	assert.Equal(t, kafkago.RequireOne, w.RequiredAcks)
}
