package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/moonlight21/internal/api/apierr"
	"github.com/mcoot/moonlight21/internal/api/events"
	"github.com/mcoot/moonlight21/internal/api/request"
	"github.com/mcoot/moonlight21/internal/api/response"
	"github.com/mcoot/moonlight21/internal/middleware"
	"github.com/mcoot/moonlight21/internal/model"
	"github.com/mcoot/moonlight21/internal/services/table"
)

// TableHandler handles table and round endpoints
type TableHandler struct {
	controller table.ControllerInterface
	hubs       *events.HubManager
	logger     *slog.Logger
}

// NewTableHandler creates a new table handler
func NewTableHandler(controller table.ControllerInterface, hubs *events.HubManager, logger *slog.Logger) *TableHandler {
	return &TableHandler{
		controller: controller,
		hubs:       hubs,
		logger:     logger,
	}
}

// Create handles POST /api/v1/tables
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	// An empty body seats one default player
	if len(req.Players) == 0 {
		req.Players = []string{model.DefaultPlayerName}
	}

	t, err := h.controller.NewGame(r.Context(), req.Players)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TableFromModel(t))
}

// Get handles GET /api/v1/tables/{id}
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.controller.GetTable(r.Context(), tableID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(t))
}

// Delete handles DELETE /api/v1/tables/{id}
func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteTable(r.Context(), tableID(r)); err != nil {
		h.writeError(w, err)
		return
	}

	response.NoContent(w)
}

// Bet handles POST /api/v1/tables/{id}/bet
func (h *TableHandler) Bet(w http.ResponseWriter, r *http.Request) {
	var req request.BetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	t, err := h.controller.PlaceBet(r.Context(), tableID(r), request.SeatOrDefault(req.Seat), req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(t))
}

// Hit handles POST /api/v1/tables/{id}/hit
func (h *TableHandler) Hit(w http.ResponseWriter, r *http.Request) {
	seat, ok := decodeSeat(w, r)
	if !ok {
		return
	}

	t, err := h.controller.Hit(r.Context(), tableID(r), seat)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(t))
}

// Stand handles POST /api/v1/tables/{id}/stand
func (h *TableHandler) Stand(w http.ResponseWriter, r *http.Request) {
	seat, ok := decodeSeat(w, r)
	if !ok {
		return
	}

	t, err := h.controller.Stand(r.Context(), tableID(r), seat)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(t))
}

// Reset handles POST /api/v1/tables/{id}/reset
func (h *TableHandler) Reset(w http.ResponseWriter, r *http.Request) {
	t, err := h.controller.ResetRound(r.Context(), tableID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(t))
}

// Events handles GET /api/v1/tables/{id}/events, streaming the table after every change
func (h *TableHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := tableID(r)

	// Unknown tables get a 404 without a hub being created for them
	if _, err := h.controller.GetTable(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	hub := h.hubs.GetOrCreateHub(id)
	err := events.ServeEvents(w, r, hub, middleware.GetRequestID(r.Context()), func() ([]byte, error) {
		t, err := h.controller.GetTable(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return events.TableMessage(t)
	})
	if err != nil {
		h.writeError(w, err)
	}
}

// writeError logs server-side failures before writing the error response
func (h *TableHandler) writeError(w http.ResponseWriter, err error) {
	if apierr.Status(err) >= http.StatusInternalServerError {
		h.logger.Error("table operation failed", slog.String("error", err.Error()))
	}
	WriteError(w, err)
}

func tableID(r *http.Request) model.TableID {
	return model.TableID(mux.Vars(r)["id"])
}

// decodeSeat reads an optional {"seat": n} body. An empty body means seat 0
func decodeSeat(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req request.SeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return 0, false
	}
	return request.SeatOrDefault(req.Seat), true
}
