package handler

import (
	"net/http"

	"github.com/mcoot/moonlight21/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest  = apierr.CodeInvalidRequest
	CodeInvalidBet      = apierr.CodeInvalidBet
	CodeInvalidSeat     = apierr.CodeInvalidSeat
	CodeWrongPhase      = apierr.CodeWrongPhase
	CodeNotSeatTurn     = apierr.CodeNotSeatTurn
	CodeBetOutstanding  = apierr.CodeBetOutstanding
	CodeRoundInProgress = apierr.CodeRoundInProgress
	CodeTableNotFound   = apierr.CodeTableNotFound
	CodeDeckExhausted   = apierr.CodeDeckExhausted
	CodeInternalError   = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
