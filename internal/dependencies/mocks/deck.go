package mocks

import (
	"sync"

	"github.com/mcoot/moonlight21/internal/model"
	"github.com/mcoot/moonlight21/internal/services/deck"
)

// StackedDecks is a deck.Source that hands out pre-arranged decks
type StackedDecks struct {
	mu sync.Mutex
	// queued holds draw orders, one per deck, first card drawn first
	queued [][]model.Card
}

// Ensure StackedDecks implements deck.Source
var _ deck.Source = (*StackedDecks)(nil)

// NewStackedDecks creates an empty StackedDecks
func NewStackedDecks() *StackedDecks {
	return &StackedDecks{}
}

// Queue adds a deck whose first draws are the given cards in order.
// The rest of the 52 cards sit underneath in ordered-deck order
func (s *StackedDecks) Queue(draws ...model.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued = append(s.queued, draws)
}

// NewDeck returns the next queued deck, or an unshuffled deck once the queue is empty
func (s *StackedDecks) NewDeck() (*model.Deck, error) {
	s.mu.Lock()
	if len(s.queued) == 0 {
		s.mu.Unlock()
		return model.NewDeck(model.OrderedCards())
	}
	draws := s.queued[0]
	s.queued = s.queued[1:]
	s.mu.Unlock()
	return StackedDeck(draws...)
}

// Pending returns how many queued decks have not been handed out
func (s *StackedDecks) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queued)
}

// StackedDeck builds a full deck whose first draws are the given cards in order
func StackedDeck(draws ...model.Card) (*model.Deck, error) {
	top := make(map[model.Card]bool, len(draws))
	for _, c := range draws {
		top[c] = true
	}

	cards := make([]model.Card, 0, model.DeckSize)
	for _, c := range model.OrderedCards() {
		if !top[c] {
			cards = append(cards, c)
		}
	}
	for i := len(draws) - 1; i >= 0; i-- {
		cards = append(cards, draws[i])
	}
	return model.NewDeck(cards)
}

// Reset clears all queued decks
func (s *StackedDecks) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued = nil
}
