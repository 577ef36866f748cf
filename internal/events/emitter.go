package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/giseleterencioa-design/app-daybaby/internal/platform/logger"
)

// ErrInvalidEvent is returned by EmitEvent for a nil event or one whose kind
// is not an analytics kind. Such events never reach a handler.
var ErrInvalidEvent = errors.New("invalid analytics event")

// InMemoryEmitter fans analytics events out to its handlers synchronously,
// in registration order.
type InMemoryEmitter struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   *slog.Logger
}

var _ Emitter = (*InMemoryEmitter)(nil)

// NewInMemoryEmitter creates an emitter with no handlers.
func NewInMemoryEmitter(logger *slog.Logger) *InMemoryEmitter {
	return &InMemoryEmitter{
		logger: logger.With("component", "analytics_emitter"),
	}
}

// RegisterHandler appends handler. A nil handler is ignored.
func (e *InMemoryEmitter) RegisterHandler(handler Handler) {
	if handler == nil {
		return
	}
	e.mu.Lock()
	e.handlers = append(e.handlers, handler)
	n := len(e.handlers)
	e.mu.Unlock()

	e.logger.Debug("registered analytics handler", "handler_count", n)
}

// EmitEvent delivers event to every handler. A failing handler doesn't stop
// delivery to the rest; the first failure is returned. Logging goes through
// the logger carried by ctx when there is one.
func (e *InMemoryEmitter) EmitEvent(ctx context.Context, event *Event) error {
	if event == nil {
		return fmt.Errorf("%w: nil event", ErrInvalidEvent)
	}
	if !event.Kind.Valid() {
		return fmt.Errorf("%w: kind %q", ErrInvalidEvent, event.Kind)
	}

	e.mu.RLock()
	handlers := append([]Handler(nil), e.handlers...)
	e.mu.RUnlock()

	log := logger.FromContextOrDefault(ctx, e.logger).With(
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Kind)),
	)

	if len(handlers) == 0 {
		log.WarnContext(ctx, "analytics event dropped, no handlers registered")
		return nil
	}

	var firstErr error
	for i, handler := range handlers {
		err := handler.HandleEvent(ctx, event)
		if err == nil {
			continue
		}
		log.ErrorContext(ctx, "analytics handler failed", "handler_index", i, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	log.DebugContext(ctx, "analytics event delivered", "handler_count", len(handlers))
	return firstErr
}
