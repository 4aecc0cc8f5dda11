// Package queue carries domain events between the API and the worker
// over RabbitMQ. Publishing is best effort and never blocks a response on
// broker availability.
package queue

import (
	"context"
	"sync"
	"time"
)

type EventType string

const (
	EventOrderCompleted      EventType = "order.completed"
	EventSubscriptionCreated EventType = "subscription.created"
	EventBookingCreated      EventType = "booking.created"
	EventBookingCancelled    EventType = "booking.cancelled"
	EventContactReceived     EventType = "contact.received"
)

type Event struct {
	Type       EventType      `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	AccountID  string         `json:"account_id,omitempty"`
	ObjectID   string         `json:"object_id"`
	Summary    string         `json:"summary"`
	Data       map[string]any `json:"data,omitempty"`
}

func NewEvent(t EventType, accountID, objectID, summary string, data map[string]any) Event {
	return Event{
		Type:       t,
		OccurredAt: time.Now().UTC(),
		AccountID:  accountID,
		ObjectID:   objectID,
		Summary:    summary,
		Data:       data,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, Event) error { return nil }
func (noopPublisher) Close() error                         { return nil }

// MemoryPublisher keeps events in memory. Used by tests and local runs.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (m *MemoryPublisher) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MemoryPublisher) Close() error { return nil }

func (m *MemoryPublisher) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}
