package event

import (
	"context"
	"sync"

	"github.com/stocktrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InMemoryEventBus implements EventPublisher and EventSubscriber with
// in-process pub/sub. Handlers run synchronously on the publishing
// goroutine; a failing or panicking handler never fails the publish.
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
	logger   *zap.Logger
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]shared.EventHandler),
		logger:   logger,
	}
}

// Publish dispatches events to all handlers registered for their type
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, event := range events {
		b.mu.RLock()
		handlers := b.handlers[event.EventType()]
		b.mu.RUnlock()

		b.logger.Debug("event published",
			zap.String("event_type", event.EventType()),
			zap.String("event_id", event.EventID().String()),
			zap.String("aggregate_id", event.AggregateID().String()),
		)

		for _, handler := range handlers {
			b.dispatch(ctx, handler, event)
		}
	}
	return nil
}

// Subscribe registers a handler for an event type
func (b *InMemoryEventBus) Subscribe(eventType string, handler shared.EventHandler) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()

	b.logger.Debug("handler subscribed", zap.String("event_type", eventType))
}

func (b *InMemoryEventBus) dispatch(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
		}
	}()

	handler(ctx, event)
}

// Ensure InMemoryEventBus implements the publisher and subscriber interfaces
var _ shared.EventPublisher = (*InMemoryEventBus)(nil)
var _ shared.EventSubscriber = (*InMemoryEventBus)(nil)
