package item

import (
	"catalog/domain"
	"catalog/pkg/nullable"
	"context"
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id int64) (domain.Item, error)
	Create(ctx context.Context, params CreateParams) (domain.Item, error)
	Update(ctx context.Context, id int64, params UpdateParams) (domain.Item, error)
	Delete(ctx context.Context, id int64) (domain.Item, error)
	SearchByName(ctx context.Context, query string) ([]domain.Item, error)
}

// CreateParams carries every item field except the id. A nil IsAvailable means true.
type CreateParams struct {
	Name        string
	Description *string
	Price       *float64
	IsAvailable *bool
}

// UpdateParams carries the fields to overwrite. Unset fields keep their stored value;
// Description may be explicitly set to null to clear it.
type UpdateParams struct {
	Name        *string
	Description nullable.Value[string]
	Price       *float64
	IsAvailable *bool
}
