package consumers

import (
	"catalog/pkg/events"
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedHandler() (*ItemAuditHandler, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewItemAuditHandler(zap.New(core)), logs
}

func mustEvent(t *testing.T, name string, payload any) *events.Event {
	t.Helper()
	event, err := events.NewEvent(name, events.EventVersionV1, payload, events.NewHeaders("catalog", "req-1"))
	require.NoError(t, err)
	return event
}

func TestItemAuditHandlerLogsSnapshots(t *testing.T) {
	h, logs := newObservedHandler()

	err := h.HandleEvent(context.Background(), mustEvent(t, events.ItemCreatedEvent, events.ItemPayload{
		ID:    1,
		Name:  "Laptop",
		Price: decimal.RequireFromString("999.99"),
	}))
	require.NoError(t, err)

	entries := logs.FilterMessage("item audit").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(1), fields["itemId"])
	assert.Equal(t, "999.99", fields["price"])
	assert.Equal(t, "req-1", fields["correlationId"])
}

func TestItemAuditHandlerLogsDeletes(t *testing.T) {
	h, logs := newObservedHandler()

	err := h.HandleEvent(context.Background(), mustEvent(t, events.ItemDeletedEvent, events.ItemDeletedPayload{ID: 4, Name: "Mouse"}))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterField(zap.String("event", events.ItemDeletedEvent)).Len())
}

func TestItemAuditHandlerRejectsMalformedPayloads(t *testing.T) {
	h, _ := newObservedHandler()

	event := mustEvent(t, events.ItemUpdatedEvent, events.ItemPayload{})
	assert.Error(t, h.HandleEvent(context.Background(), event))

	event.Payload = json.RawMessage(`"oops"`)
	assert.Error(t, h.HandleEvent(context.Background(), event))
}

func TestItemAuditHandlerIgnoresUnknownEvents(t *testing.T) {
	h, logs := newObservedHandler()

	require.NoError(t, h.HandleEvent(context.Background(), mustEvent(t, "item.archived", struct{}{})))
	assert.Equal(t, 1, logs.FilterMessage("Unknown item event type").Len())
}
