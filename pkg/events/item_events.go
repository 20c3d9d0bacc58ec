package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ItemDomain   = "item"
	ItemExchange = "catalog.item"
)

const (
	ItemCreatedEvent = "item.created"
	ItemUpdatedEvent = "item.updated"
	ItemDeletedEvent = "item.deleted"
)

const (
	EventVersionV1 = "v1"
)

// ItemPayload is the item snapshot carried by item.created and item.updated.
type ItemPayload struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

type ItemDeletedPayload struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	DeletedAt time.Time `json:"deletedAt"`
}
