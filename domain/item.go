package domain

type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

// Clone returns a copy that shares no memory with the receiver.
func (i Item) Clone() Item {
	if i.Description != nil {
		description := *i.Description
		i.Description = &description
	}
	return i
}
