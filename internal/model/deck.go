package model

import (
	"encoding/json"
	"fmt"
)

// DeckSize is the number of cards in a full deck
const DeckSize = 52

// Deck is an ordered pile of distinct cards. The top is the end of the slice
type Deck struct {
	cards []Card
}

// NewDeck creates a deck holding the given cards in order, last card on top.
// Cards must be distinct; a full deck is not required
func NewDeck(cards []Card) (*Deck, error) {
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if c.IsZero() {
			return nil, fmt.Errorf("%w: empty card", ErrInvalidRank)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return &Deck{cards: out}, nil
}

// OrderedCards returns all 52 cards, suits in Suits order and ranks in Ranks order
func OrderedCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{suit: suit, rank: rank})
		}
	}
	return cards
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Remaining returns the number of cards left
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsExhausted returns true once every card has been drawn
func (d *Deck) IsExhausted() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// MarshalJSON encodes the remaining cards bottom first
func (d *Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.cards)
}

// UnmarshalJSON restores a deck, rejecting duplicates
func (d *Deck) UnmarshalJSON(data []byte) error {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return err
	}
	restored, err := NewDeck(cards)
	if err != nil {
		return err
	}
	d.cards = restored.cards
	return nil
}
