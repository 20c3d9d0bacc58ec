package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/requestid"
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const serviceName = "catalog"

func itemPayload(item domain.Item) events.ItemPayload {
	return events.ItemPayload{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       decimal.NewFromFloat(item.Price),
		IsAvailable: item.IsAvailable,
		OccurredAt:  time.Now().UTC(),
	}
}

// publishEvent never fails the caller; the store mutation has already happened.
func publishEvent(ctx context.Context, publisher events.Publisher, name string, itemID int64, payload any) {
	if publisher == nil {
		return
	}

	headers := events.NewHeaders(serviceName, requestid.FromContext(ctx))

	event, err := events.NewEvent(name, events.EventVersionV1, payload, headers)
	if err != nil {
		zap.L().Error("Failed to build item event",
			zap.String("event", name),
			zap.Int64("itemId", itemID),
			zap.Error(err),
		)
		return
	}

	if err := publisher.Publish(ctx, events.ItemExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish item event",
			zap.String("event", name),
			zap.Int64("itemId", itemID),
			zap.Error(err),
		)
	}
}
