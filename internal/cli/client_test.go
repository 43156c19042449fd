package cli

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_SEAT_TURN","message":"not this seat's turn"}}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL+"/").Post(context.Background(), "/api/v1/tables/X/hit", map[string]int{"seat": 1}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "NOT_SEAT_TURN", apiErr.Code)
	assert.Equal(t, "not this seat's turn (NOT_SEAT_TURN)", err.Error())
}

func TestClientNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Get(context.Background(), "/api/v1/health", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClientSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tables/T1/bet", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"T1","phase":"bet_placed","seats":[{"seat":0,"name":"Ann","stake":50}]}`))
	}))
	defer srv.Close()

	var table Table
	err := NewClient(srv.URL).Post(context.Background(), tablePath("T1", "bet"), map[string]any{"seat": 0, "amount": 50}, &table)
	require.NoError(t, err)
	assert.Equal(t, "T1", table.ID)
	assert.Equal(t, int64(50), table.Seats[0].Stake)
}

func TestClientReportsRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(requestIDHeader, "req-42")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"TABLE_NOT_FOUND","message":"Table not found"}}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Delete(context.Background(), tablePath("GONE", ""))
	require.Error(t, err)
	assert.Equal(t, "Table not found (TABLE_NOT_FOUND, request req-42)", err.Error())
}
