package service

import (
	"context"

	"cofoundr-be/pkg/events"
)

// EventPublisher is the slice of the event bus the services publish through.
// The NATS publisher satisfies it in production; a nil value disables
// publishing.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
