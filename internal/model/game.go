package model

import "time"

// TableID uniquely identifies a table
type TableID string

// Phase represents the current stage of a table's round
type Phase string

const (
	PhaseNotStarted Phase = "not_started" // Awaiting bets, no cards dealt
	PhaseBetPlaced  Phase = "bet_placed"  // Some seats have bet, others still to bet
	PhasePlayerTurn Phase = "player_turn" // Seats acting in order
	PhaseDealerTurn Phase = "dealer_turn" // Dealer drawing to 17
	PhaseSettled    Phase = "settled"     // Bets paid out, waiting for reset
)

// SeatStatus tracks a seat's progress through one round
type SeatStatus string

const (
	SeatWaiting SeatStatus = "waiting" // No bet yet
	SeatBet     SeatStatus = "bet"     // Bet placed, cards not yet dealt
	SeatPlaying SeatStatus = "playing" // Dealt in, may still hit
	SeatStood   SeatStatus = "stood"   // Finished drawing
	SeatBust    SeatStatus = "bust"    // Went over 21, already settled
	SeatDone    SeatStatus = "done"    // Settled against the dealer
	SeatOut     SeatStatus = "out"     // No balance left, sits the round out
)

// Outcome is how a seat's bet was settled
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeWin     Outcome = "win"
	OutcomeNatural Outcome = "natural"
	OutcomePush    Outcome = "push"
	OutcomeLose    Outcome = "lose"
	OutcomeBust    Outcome = "bust"
)

// Multiplier returns the Win multiplier for winning outcomes, or 0
func (o Outcome) Multiplier() int {
	switch o {
	case OutcomeWin:
		return StandardMultiplier
	case OutcomeNatural:
		return NaturalMultiplier
	default:
		return 0
	}
}

// MaxHistory is the number of round summaries a table keeps
const MaxHistory = 20

// Seat is a player account's position at a table
type Seat struct {
	Account *Account   `json:"account"`
	Status  SeatStatus `json:"status"`
	Stake   int64      `json:"stake"` // Bet placed this round, kept after settlement
	Outcome Outcome    `json:"outcome,omitempty"`
	Payout  int64      `json:"payout"`
}

// NewSeat seats an account, sitting it out if it has nothing to wager
func NewSeat(account *Account) *Seat {
	seat := &Seat{Account: account}
	seat.Reset()
	return seat
}

// Reset clears the seat for a new round. The account keeps its money and record
func (s *Seat) Reset() {
	s.Account.ResetHand()
	s.Account.Bet = 0
	s.Stake = 0
	s.Outcome = OutcomeNone
	s.Payout = 0
	s.Status = SeatWaiting
	if s.Account.Balance <= 0 {
		s.Status = SeatOut
	}
}

// InRound returns true if the seat was dealt into the current round
func (s *Seat) InRound() bool {
	return s.Status != SeatWaiting && s.Status != SeatOut
}

// IsSettled returns true once the seat's bet has been resolved this round
func (s *Seat) IsSettled() bool {
	return s.Outcome != OutcomeNone
}

// Table holds one dealer, the seated players and the current round
type Table struct {
	ID         TableID  `json:"id"`
	Phase      Phase    `json:"phase"`
	Dealer     *Account `json:"dealer"`
	Seats      []*Seat  `json:"seats"`
	Deck       *Deck    `json:"deck"`
	ActingSeat int      `json:"acting_seat"` // -1 when no seat is acting

	// Round tracking
	Round   int            `json:"round"`    // 1-based, 0 before the first deal
	RoundID string         `json:"round_id"` // Unique per dealt round
	History []RoundSummary `json:"history"`

	// Timing
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Seat returns the seat at index i
func (t *Table) Seat(i int) (*Seat, error) {
	if i < 0 || i >= len(t.Seats) {
		return nil, ErrInvalidSeat
	}
	return t.Seats[i], nil
}

// AllBetsPlaced returns true once every seat that can play has a bet outstanding
func (t *Table) AllBetsPlaced() bool {
	betting := 0
	for _, s := range t.Seats {
		switch s.Status {
		case SeatBet:
			betting++
		case SeatOut:
		default:
			return false
		}
	}
	return betting > 0
}

// NextPlayingSeat returns the first seat at or after from that can still act, or -1
func (t *Table) NextPlayingSeat(from int) int {
	for i := from; i < len(t.Seats); i++ {
		if t.Seats[i].Status == SeatPlaying {
			return i
		}
	}
	return -1
}

// AnyStanding returns true if some seat stood and still awaits the dealer
func (t *Table) AnyStanding() bool {
	for _, s := range t.Seats {
		if s.Status == SeatStood {
			return true
		}
	}
	return false
}

// AddHistory records a summary, keeping the most recent MaxHistory
func (t *Table) AddHistory(summary RoundSummary) {
	t.History = append(t.History, summary)
	if len(t.History) > MaxHistory {
		t.History = t.History[len(t.History)-MaxHistory:]
	}
}

// SeatResult is one seat's line in a round summary
type SeatResult struct {
	Seat    int     `json:"seat"`
	Name    string  `json:"name"`
	Cards   []Card  `json:"cards"`
	Score   int     `json:"score"`
	Outcome Outcome `json:"outcome"`
	Bet     int64   `json:"bet"`
	Payout  int64   `json:"payout"`
}

// RoundSummary is a lightweight record of a settled round
type RoundSummary struct {
	Round       int          `json:"round"`
	RoundID     string       `json:"round_id"`
	DealerCards []Card       `json:"dealer_cards"`
	DealerScore int          `json:"dealer_score"`
	Results     []SeatResult `json:"results"`
	CompletedAt time.Time    `json:"completed_at"`
}
