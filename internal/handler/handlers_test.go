package handler

import (
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{Address: "127.0.0.1:8088"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{Address: ":8088"}

	h1, err := NewHandlers(newTestServices(), cfg, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(newTestServices(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
