package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind is the type of an analytics event.
type Kind string

// Event kinds.
const (
	LanguageChange Kind = "language_change"
	ThemeChange    Kind = "theme_change"
	ActivityAdded  Kind = "activity_added"
	SessionStart   Kind = "session_start"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case LanguageChange, ThemeChange, ActivityAdded, SessionStart:
		return true
	}
	return false
}

// Event is one entry of the append-only analytics log.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Kind is the event type
	Kind Kind `json:"type"`

	// Data is the free-form payload, e.g. {"language": "pt"}
	Data map[string]string `json:"data,omitempty"`

	// Timestamp is when the event happened, UTC at second precision
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent creates an event of kind at the given time. The timestamp is
// stored in UTC truncated to the second so it survives serialization
// unchanged.
func NewEvent(kind Kind, data map[string]string, at time.Time) (*Event, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}

	payload := make(map[string]string, len(data))
	for k, v := range data {
		payload[k] = v
	}

	return &Event{
		ID:        uuid.New(),
		Kind:      kind,
		Data:      payload,
		Timestamp: at.UTC().Truncate(time.Second),
	}, nil
}

// Handler defines an interface for components that consume events.
type Handler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// Emitter defines an interface for components that publish events.
type Emitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *Event) error
}
