package item

import (
	"catalog/domain"
	"context"
)

type GetItemHandler struct {
	repository Repository
}

func NewGetItemHandler(repository Repository) *GetItemHandler {
	return &GetItemHandler{
		repository: repository,
	}
}

type GetItemRequest struct {
	ItemID int64 `params:"id" json:"-"`
}

type GetItemResponse domain.Item

func (h GetItemHandler) Handle(ctx context.Context, req *GetItemRequest) (*GetItemResponse, error) {
	item, err := h.repository.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, storeError("show", err)
	}

	res := GetItemResponse(item)
	return &res, nil
}
