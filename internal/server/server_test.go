package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/handler"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(nil, config.StructuredConfig{Server: cfg}, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenFailure(t *testing.T) {
	cfg := config.Server{GRPCAddress: "256.0.0.1:bad"}

	_, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.Error(t, err)
}

func TestServer_RunStopsWhenContextIsCancelled(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: time.Second,
	}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunServer(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewHTTPServer_DefaultTimeout(t *testing.T) {
	h := newHTTPServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Equal(t, defaultRequestTimeout, h.server.ReadHeaderTimeout)
	assert.Zero(t, h.server.WriteTimeout)
}
