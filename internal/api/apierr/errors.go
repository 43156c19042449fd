package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/moonlight21/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidBet       = "INVALID_BET"
	CodeInvalidSeat      = "INVALID_SEAT"
	CodeWrongPhase       = "WRONG_PHASE"
	CodeNotSeatTurn      = "NOT_SEAT_TURN"
	CodeBetOutstanding   = "BET_OUTSTANDING"
	CodeRoundInProgress  = "ROUND_IN_PROGRESS"
	CodeTableNotFound    = "TABLE_NOT_FOUND"
	CodeDeckExhausted    = "DECK_EXHAUSTED"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrTableNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTableNotFound, "Table not found"}}
	case errors.Is(err, model.ErrInvalidSeat):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSeat, "No player in that seat"}}
	case errors.Is(err, model.ErrInvalidBet):
		// Carries the attempted amount and the live balance
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBet, err.Error()}}
	case errors.Is(err, model.ErrNoPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "At least one player is required"}}
	case errors.Is(err, model.ErrWrongPhase):
		return &httpError{http.StatusConflict, APIError{CodeWrongPhase, "Not allowed in the current phase"}}
	case errors.Is(err, model.ErrNotSeatTurn):
		return &httpError{http.StatusConflict, APIError{CodeNotSeatTurn, "Not this seat's turn"}}
	case errors.Is(err, model.ErrBetOutstanding):
		return &httpError{http.StatusConflict, APIError{CodeBetOutstanding, "Seat already has a bet outstanding"}}
	case errors.Is(err, model.ErrRoundInProgress):
		return &httpError{http.StatusConflict, APIError{CodeRoundInProgress, "Round is still in progress"}}
	case errors.Is(err, model.ErrDeckExhausted):
		return &httpError{http.StatusInternalServerError, APIError{CodeDeckExhausted, "Deck is exhausted"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates an error for an unknown route
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewMethodNotAllowedError creates an error for a known route with the wrong method
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, "Method not allowed"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
