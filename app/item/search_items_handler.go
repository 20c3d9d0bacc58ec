package item

import (
	"catalog/domain"
	"context"
)

type SearchItemsHandler struct {
	repository Repository
}

func NewSearchItemsHandler(repository Repository) *SearchItemsHandler {
	return &SearchItemsHandler{
		repository: repository,
	}
}

type SearchItemsRequest struct {
	Name string `params:"name" json:"-"`
}

type SearchItemsResponse []domain.Item

func (h SearchItemsHandler) Handle(ctx context.Context, req *SearchItemsRequest) (*SearchItemsResponse, error) {
	items, err := h.repository.SearchByName(ctx, req.Name)
	if err != nil {
		return nil, storeError("search", err)
	}

	res := SearchItemsResponse(items)
	return &res, nil
}
