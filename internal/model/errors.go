package model

import "errors"

// Common errors used across the application
var (
	// Card and deck errors
	ErrInvalidRank   = errors.New("invalid card rank")
	ErrInvalidSuit   = errors.New("invalid card suit")
	ErrDuplicateCard = errors.New("card appears twice in deck")
	ErrDeckExhausted = errors.New("deck is exhausted")

	// Account errors
	ErrInvalidBet = errors.New("bet must be positive and no more than the balance")

	// Table errors
	ErrTableNotFound       = errors.New("table not found")
	ErrNoPlayers           = errors.New("table needs at least one player")
	ErrInvalidSeat         = errors.New("no player in that seat")
	ErrWrongPhase          = errors.New("operation not allowed in the current phase")
	ErrNotSeatTurn         = errors.New("not this seat's turn")
	ErrBetOutstanding      = errors.New("seat already has a bet outstanding")
	ErrRoundInProgress     = errors.New("round is still in progress")
	ErrSettlementInvariant = errors.New("busted seat reached settlement unsettled")
)
