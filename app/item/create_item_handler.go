package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"

	"github.com/gofiber/fiber/v2"
)

type CreateItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type CreateItemRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	IsAvailable *bool    `json:"is_available"`
}

type CreateItemResponse domain.Item

func (CreateItemResponse) StatusCode() int {
	return fiber.StatusCreated
}

func NewCreateItemHandler(repository Repository, eventPublisher events.Publisher) *CreateItemHandler {
	return &CreateItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h CreateItemHandler) Handle(ctx context.Context, req *CreateItemRequest) (*CreateItemResponse, error) {
	if err := validateRequest("create", req); err != nil {
		return nil, err
	}

	item, err := h.repository.Create(ctx, CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return nil, storeError("create", err)
	}

	publishEvent(ctx, h.eventPublisher, events.ItemCreatedEvent, item.ID, itemPayload(item))

	res := CreateItemResponse(item)
	return &res, nil
}
