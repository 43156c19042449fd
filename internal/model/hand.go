package model

import (
	"encoding/json"
	"strings"
)

const (
	// BlackjackScore is the best possible hand total
	BlackjackScore = 21
	// DealerStandScore is the house rule: the dealer stands on any 17 or more, soft included
	DealerStandScore = 17
)

// Hand is one party's cards for the current round. Cards are only ever appended
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// AddCard appends a card
func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards
func (h *Hand) Len() int {
	return len(h.cards)
}

// Score returns the hand total, counting aces as 1 where 11 would bust
func (h *Hand) Score() int {
	score, _ := h.evaluate()
	return score
}

// IsSoft returns true if an ace is still being counted as 11
func (h *Hand) IsSoft() bool {
	_, soft := h.evaluate()
	return soft
}

// IsBust returns true if the hand is over 21
func (h *Hand) IsBust() bool {
	return h.Score() > BlackjackScore
}

// IsNatural returns true for a two-card 21
func (h *Hand) IsNatural() bool {
	return len(h.cards) == 2 && h.Score() == BlackjackScore
}

// evaluate computes the total from scratch on every call
func (h *Hand) evaluate() (score int, soft bool) {
	aces := 0
	for _, c := range h.cards {
		score += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for score > BlackjackScore && aces > 0 {
		score -= 10
		aces--
	}
	return score, aces > 0
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.Display()
	}
	return strings.Join(parts, " ")
}

// MarshalJSON encodes the hand as its card list
func (h *Hand) MarshalJSON() ([]byte, error) {
	if h.cards == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h.cards)
}

// UnmarshalJSON decodes a card list
func (h *Hand) UnmarshalJSON(data []byte) error {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return err
	}
	h.cards = cards
	return nil
}
