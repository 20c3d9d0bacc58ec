package status

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoHandler(t *testing.T) {
	res, err := NewInfoHandler("catalog", "0.1.0").Handle(context.Background(), &InfoRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Hello from catalog!", res.Message)
	assert.Equal(t, "0.1.0", res.Version)
	assert.Equal(t, "/health", res.Health)
}

func TestHealthHandler(t *testing.T) {
	res, err := NewHealthHandler("catalog").Handle(context.Background(), &HealthRequest{})
	require.NoError(t, err)

	assert.Equal(t, &HealthResponse{Status: "healthy", Service: "catalog"}, res)
}
