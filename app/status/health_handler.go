package status

import (
	"context"
)

type HealthHandler struct {
	service string
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{
		service: service,
	}
}

type HealthRequest struct{}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Handle always reports healthy: the store lives in process memory and has no
// dependency that could be unreachable.
func (h HealthHandler) Handle(_ context.Context, _ *HealthRequest) (*HealthResponse, error) {
	return &HealthResponse{
		Status:  "healthy",
		Service: h.service,
	}, nil
}
