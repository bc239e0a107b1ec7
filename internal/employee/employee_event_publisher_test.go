package employee_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-hrms/internal/employee"
	"go-hrms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafkago.Message
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestKafkaEventPublisher_PublishEmployeeCreated(t *testing.T) {
	w := &recordingWriter{}
	pub := employee.NewKafkaEventPublisher(w)

	ev := events.EmployeeCreatedEvent{
		EventType:    events.EmployeeCreatedType,
		RequestID:    "req-9",
		EmployeeID:   42,
		DepartmentID: 3,
		Email:        "a@b.com",
		OccurredAt:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, pub.PublishEmployeeCreated(context.Background(), ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, events.EmployeeLifecycleTopic, msg.Topic)
	assert.Equal(t, "42", string(msg.Key))

	var got events.EmployeeCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, ev, got)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, events.EmployeeCreatedType, headers["event_type"])
	assert.Equal(t, "employee", headers["aggregate_type"])
	assert.Equal(t, "req-9", headers["request_id"])
}

func TestNoopEventPublisher(t *testing.T) {
	assert.NoError(t, employee.NewNoopEventPublisher().PublishEmployeeCreated(context.Background(), events.EmployeeCreatedEvent{}))
}
