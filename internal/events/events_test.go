package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	at := time.Date(2024, time.June, 20, 10, 15, 30, 987654321, time.FixedZone("BRT", -3*3600))
	data := map[string]string{"type": "sleep", "date": "2024-06-20"}

	event, err := NewEvent(ActivityAdded, data, at)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, ActivityAdded, event.Kind)
	assert.Equal(t, data, event.Data)
	assert.Equal(t, time.Date(2024, time.June, 20, 13, 15, 30, 0, time.UTC), event.Timestamp)

	// The payload is copied
	data["type"] = "bottle"
	assert.Equal(t, "sleep", event.Data["type"])

	_, err = NewEvent("page_view", nil, at)
	assert.Error(t, err)
}

func TestEventJSONRoundTrip(t *testing.T) {
	event, err := NewEvent(ThemeChange, map[string]string{"theme": "dark"}, time.Now())
	require.NoError(t, err)

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"theme_change"`)

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.True(t, event.Timestamp.Equal(decoded.Timestamp))
	assert.Equal(t, event.Data, decoded.Data)
}

// MockEventHandler implements the Handler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *Event
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the Handler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}
