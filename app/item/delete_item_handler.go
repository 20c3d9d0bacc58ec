package item

import (
	"catalog/pkg/events"
	"context"
	"fmt"
	"time"
)

type DeleteItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteItemHandler(repository Repository, eventPublisher events.Publisher) *DeleteItemHandler {
	return &DeleteItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteItemRequest struct {
	ItemID int64 `params:"id" json:"-"`
}

type DeleteItemResponse struct {
	Message string `json:"message"`
}

func (h DeleteItemHandler) Handle(ctx context.Context, req *DeleteItemRequest) (*DeleteItemResponse, error) {
	item, err := h.repository.Delete(ctx, req.ItemID)
	if err != nil {
		return nil, storeError("destroy", err)
	}

	publishEvent(ctx, h.eventPublisher, events.ItemDeletedEvent, item.ID, events.ItemDeletedPayload{
		ID:        item.ID,
		Name:      item.Name,
		DeletedAt: time.Now().UTC(),
	})

	return &DeleteItemResponse{
		Message: fmt.Sprintf("Item %s deleted successfully", item.Name),
	}, nil
}
