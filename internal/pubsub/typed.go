package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to its payload type.
type Event[T any] struct {
	name        string
	description string
}

// NewEvent declares a typed event.
func NewEvent[T any](name, description string) Event[T] {
	return Event[T]{name: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string { return e.name }

// Description returns the human readable summary of the event.
func (e Event[T]) Description() string { return e.description }

// Publish sends a typed event. The compiler ensures payload matches T.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], userID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event.name, err)
	}
	return p.Publish(ctx, Message{
		Topic:   event.name,
		UserID:  userID,
		Payload: data,
	})
}

// Subscribe decodes each message on event's topic into T before calling fn.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], fn func(ctx context.Context, userID string, payload T) error) error {
	return s.Subscribe(ctx, event.name, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.name, err)
		}
		return fn(ctx, msg.UserID, payload)
	})
}
