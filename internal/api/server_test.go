package api

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/moonlight21/internal/testutil"
)

func TestServerRunStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	cfg := DefaultServerConfig()
	cfg.ShutdownTimeout = time.Second
	server := NewServer(handler, cfg, testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	beforeShutdownCalled := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, ln, func() { close(beforeShutdownCalled) })
	}()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	_, open := <-beforeShutdownCalled
	assert.False(t, open)
}

func TestServerStartFailsOnBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	port := ln.Addr().(*net.TCPAddr).Port
	cfg := DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = port

	err = NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger()).Start()
	assert.Error(t, err)
}
