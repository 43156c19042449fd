package response

import (
	"time"

	"github.com/mcoot/moonlight21/internal/model"
)

// HiddenCard is shown in place of the dealer's hole card
const HiddenCard = "??"

// holeCardIndex is the dealer card dealt face down
const holeCardIndex = 1

// Card represents a card in API responses
type Card struct {
	Code    string `json:"code,omitempty"`
	Display string `json:"display"`
	Hidden  bool   `json:"hidden,omitempty"`
}

// CardFromModel converts a model.Card
func CardFromModel(c model.Card) Card {
	return Card{
		Code:    c.Code(),
		Display: c.Display(),
	}
}

// CardsFromModel converts a slice of model.Card
func CardsFromModel(cards []model.Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = CardFromModel(c)
	}
	return out
}

// Hand represents a hand and its score. Score is nil while part of the hand is hidden
type Hand struct {
	Cards   []Card `json:"cards"`
	Score   *int   `json:"score"`
	Soft    bool   `json:"soft"`
	Bust    bool   `json:"bust"`
	Natural bool   `json:"natural"`
}

// HandFromModel converts a model.Hand with every card face up
func HandFromModel(h *model.Hand) Hand {
	score := h.Score()
	return Hand{
		Cards:   CardsFromModel(h.Cards()),
		Score:   &score,
		Soft:    h.IsSoft(),
		Bust:    h.IsBust(),
		Natural: h.IsNatural(),
	}
}

// dealerHand converts the dealer's hand, hiding the hole card and score while seats act
func dealerHand(h *model.Hand, hideHole bool) Hand {
	if !hideHole || h.Len() <= holeCardIndex {
		return HandFromModel(h)
	}
	cards := CardsFromModel(h.Cards())
	cards[holeCardIndex] = Card{Display: HiddenCard, Hidden: true}
	return Hand{Cards: cards}
}

// Dealer represents the dealer in API responses
type Dealer struct {
	Name string `json:"name"`
	Hand Hand   `json:"hand"`
}

// Seat represents a seated player in API responses
type Seat struct {
	Seat    int    `json:"seat"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
	Bet     int64  `json:"bet"`
	Stake   int64  `json:"stake"`
	Hand    Hand   `json:"hand"`
	Status  string `json:"status"`
	Outcome string `json:"outcome,omitempty"`
	Payout  int64  `json:"payout"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Ties    int    `json:"ties"`
}

// SeatFromModel converts a model.Seat at index i
func SeatFromModel(i int, s *model.Seat) Seat {
	return Seat{
		Seat:    i,
		Name:    s.Account.Name,
		Balance: s.Account.Balance,
		Bet:     s.Account.Bet,
		Stake:   s.Stake,
		Hand:    HandFromModel(s.Account.Hand),
		Status:  string(s.Status),
		Outcome: string(s.Outcome),
		Payout:  s.Payout,
		Wins:    s.Account.Wins,
		Losses:  s.Account.Losses,
		Ties:    s.Account.Ties,
	}
}

// SeatResult is one seat's line in a round summary
type SeatResult struct {
	Seat    int    `json:"seat"`
	Name    string `json:"name"`
	Cards   []Card `json:"cards"`
	Score   int    `json:"score"`
	Outcome string `json:"outcome"`
	Bet     int64  `json:"bet"`
	Payout  int64  `json:"payout"`
}

// RoundSummary represents a settled round
type RoundSummary struct {
	Round       int          `json:"round"`
	RoundID     string       `json:"round_id"`
	DealerCards []Card       `json:"dealer_cards"`
	DealerScore int          `json:"dealer_score"`
	Results     []SeatResult `json:"results"`
	CompletedAt time.Time    `json:"completed_at"`
}

// RoundSummaryFromModel converts model.RoundSummary
func RoundSummaryFromModel(r model.RoundSummary) RoundSummary {
	results := make([]SeatResult, len(r.Results))
	for i, res := range r.Results {
		results[i] = SeatResult{
			Seat:    res.Seat,
			Name:    res.Name,
			Cards:   CardsFromModel(res.Cards),
			Score:   res.Score,
			Outcome: string(res.Outcome),
			Bet:     res.Bet,
			Payout:  res.Payout,
		}
	}
	return RoundSummary{
		Round:       r.Round,
		RoundID:     r.RoundID,
		DealerCards: CardsFromModel(r.DealerCards),
		DealerScore: r.DealerScore,
		Results:     results,
		CompletedAt: r.CompletedAt,
	}
}

// Table represents a table in API responses
type Table struct {
	ID            string         `json:"id"`
	Phase         string         `json:"phase"`
	Round         int            `json:"round"`
	RoundID       string         `json:"round_id,omitempty"`
	ActingSeat    *int           `json:"acting_seat"`
	DeckRemaining int            `json:"deck_remaining"`
	Dealer        Dealer         `json:"dealer"`
	Seats         []Seat         `json:"seats"`
	History       []RoundSummary `json:"history"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableFromModel converts model.Table. The dealer's hole card stays hidden
// until no seat can act any more
func TableFromModel(t *model.Table) Table {
	seats := make([]Seat, len(t.Seats))
	for i, s := range t.Seats {
		seats[i] = SeatFromModel(i, s)
	}

	history := make([]RoundSummary, len(t.History))
	for i, r := range t.History {
		history[i] = RoundSummaryFromModel(r)
	}

	var acting *int
	if t.ActingSeat >= 0 {
		idx := t.ActingSeat
		acting = &idx
	}

	remaining := 0
	if t.Deck != nil {
		remaining = t.Deck.Remaining()
	}

	return Table{
		ID:            string(t.ID),
		Phase:         string(t.Phase),
		Round:         t.Round,
		RoundID:       t.RoundID,
		ActingSeat:    acting,
		DeckRemaining: remaining,
		Dealer: Dealer{
			Name: t.Dealer.Name,
			Hand: dealerHand(t.Dealer.Hand, t.Phase == model.PhasePlayerTurn),
		},
		Seats:     seats,
		History:   history,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// Health is the response for the health endpoint
type Health struct {
	Status  string `json:"status"`
	Storage string `json:"storage,omitempty"`
}
