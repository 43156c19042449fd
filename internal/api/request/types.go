package request

// CreateTableRequest is the request body for opening a table
type CreateTableRequest struct {
	// Players names one seat each, in seat order. Blank names get a default
	Players []string `json:"players"`
}

// BetRequest is the request body for placing a bet
type BetRequest struct {
	Seat   *int  `json:"seat"`
	Amount int64 `json:"amount"`
}

// SeatRequest is the request body for hit and stand
type SeatRequest struct {
	Seat *int `json:"seat"`
}

// SeatOrDefault returns the requested seat, or seat 0 when none was given
func SeatOrDefault(seat *int) int {
	if seat == nil {
		return 0
	}
	return *seat
}
