package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/moonlight21/internal/api/apierr"
	"github.com/mcoot/moonlight21/internal/api/events"
	"github.com/mcoot/moonlight21/internal/api/handler"
	"github.com/mcoot/moonlight21/internal/api/middleware"
	"github.com/mcoot/moonlight21/internal/api/response"
	"github.com/mcoot/moonlight21/internal/services/table"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	TableController table.ControllerInterface
	// Hubs serves table event streams. If nil, the events route is not registered
	Hubs *events.HubManager
	// StorageType is reported by the health endpoint
	StorageType string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	tableHandler := handler.NewTableHandler(cfg.TableController, cfg.Hubs, cfg.Logger)

	// Create middleware
	requestIDMiddleware := middleware.RequestID()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(requestIDMiddleware)
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Table routes
	tables := api.PathPrefix("/tables").Subrouter()
	tables.HandleFunc("", tableHandler.Create).Methods(http.MethodPost)
	tables.HandleFunc("/{id}", tableHandler.Get).Methods(http.MethodGet)
	tables.HandleFunc("/{id}", tableHandler.Delete).Methods(http.MethodDelete)
	tables.HandleFunc("/{id}/bet", tableHandler.Bet).Methods(http.MethodPost)
	tables.HandleFunc("/{id}/hit", tableHandler.Hit).Methods(http.MethodPost)
	tables.HandleFunc("/{id}/stand", tableHandler.Stand).Methods(http.MethodPost)
	tables.HandleFunc("/{id}/reset", tableHandler.Reset).Methods(http.MethodPost)
	if cfg.Hubs != nil {
		tables.HandleFunc("/{id}/events", tableHandler.Events).Methods(http.MethodGet)
	}

	// Health check endpoint
	api.HandleFunc("/health", healthHandler(cfg.StorageType)).Methods(http.MethodGet)

	// JSON errors for unknown routes and methods
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})

	return r
}

func healthHandler(storageType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{Status: "ok", Storage: storageType})
	}
}
