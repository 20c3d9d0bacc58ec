package status

import (
	"context"
	"fmt"
)

type InfoHandler struct {
	service string
	version string
}

func NewInfoHandler(service, version string) *InfoHandler {
	return &InfoHandler{
		service: service,
		version: version,
	}
}

type InfoRequest struct{}

type InfoResponse struct {
	Message string `json:"message"`
	Service string `json:"service"`
	Version string `json:"version"`
	Health  string `json:"health"`
}

func (h InfoHandler) Handle(_ context.Context, _ *InfoRequest) (*InfoResponse, error) {
	return &InfoResponse{
		Message: fmt.Sprintf("Hello from %s!", h.service),
		Service: h.service,
		Version: h.version,
		Health:  "/health",
	}, nil
}
