package consumers

import (
	"catalog/pkg/events"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ItemAuditHandler writes one structured audit line per item lifecycle event.
type ItemAuditHandler struct {
	logger *zap.Logger
}

func NewItemAuditHandler(logger *zap.Logger) *ItemAuditHandler {
	return &ItemAuditHandler{
		logger: logger,
	}
}

func (h *ItemAuditHandler) HandleEvent(_ context.Context, event *events.Event) error {
	switch event.Event {
	case events.ItemCreatedEvent, events.ItemUpdatedEvent:
		return h.auditSnapshot(event)
	case events.ItemDeletedEvent:
		return h.auditDeleted(event)
	default:
		h.logger.Warn("Unknown item event type", zap.String("event", event.Event))
		return nil
	}
}

func (h *ItemAuditHandler) auditSnapshot(event *events.Event) error {
	var payload events.ItemPayload
	if err := event.DecodePayload(&payload); err != nil {
		return fmt.Errorf("malformed %s payload: %w", event.Event, err)
	}
	if payload.ID <= 0 {
		return fmt.Errorf("malformed %s payload: id missing", event.Event)
	}

	h.logger.Info("item audit",
		zap.String("event", event.Event),
		zap.Int64("itemId", payload.ID),
		zap.String("name", payload.Name),
		zap.Stringer("price", payload.Price),
		zap.Bool("isAvailable", payload.IsAvailable),
		zap.Time("occurredAt", payload.OccurredAt),
		zap.String("traceId", event.TraceID),
		zap.String("correlationId", event.CorrelationID),
	)
	return nil
}

func (h *ItemAuditHandler) auditDeleted(event *events.Event) error {
	var payload events.ItemDeletedPayload
	if err := event.DecodePayload(&payload); err != nil {
		return fmt.Errorf("malformed %s payload: %w", event.Event, err)
	}
	if payload.ID <= 0 {
		return fmt.Errorf("malformed %s payload: id missing", event.Event)
	}

	h.logger.Info("item audit",
		zap.String("event", event.Event),
		zap.Int64("itemId", payload.ID),
		zap.String("name", payload.Name),
		zap.Time("deletedAt", payload.DeletedAt),
		zap.String("traceId", event.TraceID),
		zap.String("correlationId", event.CorrelationID),
	)
	return nil
}
