package employee

import (
	"context"
	"encoding/json"
	"strconv"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
)

type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishEmployeeCreated(context.Context, events.EmployeeCreatedEvent) error {
	return nil
}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

type kafkaEventPublisher struct {
	writer kafka.MessageWriter
}

func NewKafkaEventPublisher(writer kafka.MessageWriter) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishEmployeeCreated(
	ctx context.Context,
	event events.EmployeeCreatedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return kafka.Publish(ctx, p.writer, kafka.Event{
		Topic:         events.EmployeeLifecycleTopic,
		Key:           strconv.FormatInt(event.EmployeeID, 10),
		EventType:     event.EventType,
		AggregateType: "employee",
		RequestID:     event.RequestID,
		Payload:       payload,
	})
}
