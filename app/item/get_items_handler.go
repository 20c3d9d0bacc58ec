package item

import (
	"catalog/domain"
	"context"
)

type GetItemsHandler struct {
	repository Repository
}

func NewGetItemsHandler(repository Repository) *GetItemsHandler {
	return &GetItemsHandler{
		repository: repository,
	}
}

type GetItemsRequest struct{}

type GetItemsResponse []domain.Item

func (h GetItemsHandler) Handle(ctx context.Context, _ *GetItemsRequest) (*GetItemsResponse, error) {
	items, err := h.repository.GetAll(ctx)
	if err != nil {
		return nil, storeError("index", err)
	}

	res := GetItemsResponse(items)
	return &res, nil
}
