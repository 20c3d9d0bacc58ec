package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/nullable"
	"context"
)

type UpdateItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

// UpdateItemRequest only overwrites the fields present in the body. An explicit
// null description clears it.
type UpdateItemRequest struct {
	ItemID      int64                  `params:"id" json:"-"`
	Name        *string                `json:"name" validate:"omitnil,min=1"`
	Description nullable.Value[string] `json:"description"`
	Price       *float64               `json:"price" validate:"omitnil,gte=0"`
	IsAvailable *bool                  `json:"is_available"`
}

type UpdateItemResponse domain.Item

func NewUpdateItemHandler(repository Repository, eventPublisher events.Publisher) *UpdateItemHandler {
	return &UpdateItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h UpdateItemHandler) Handle(ctx context.Context, req *UpdateItemRequest) (*UpdateItemResponse, error) {
	if err := validateRequest("update", req); err != nil {
		return nil, err
	}

	item, err := h.repository.Update(ctx, req.ItemID, UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return nil, storeError("update", err)
	}

	publishEvent(ctx, h.eventPublisher, events.ItemUpdatedEvent, item.ID, itemPayload(item))

	res := UpdateItemResponse(item)
	return &res, nil
}
