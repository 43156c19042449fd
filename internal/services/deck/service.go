package deck

import (
	"github.com/mcoot/moonlight21/internal/dependencies/random"
	"github.com/mcoot/moonlight21/internal/model"
)

// Source produces a fresh deck for each round
type Source interface {
	NewDeck() (*model.Deck, error)
}

// Service builds shuffled 52-card decks
type Service struct {
	random random.Random
}

// New creates a new DeckService drawing randomness from rnd
func New(rnd random.Random) *Service {
	return &Service{
		random: rnd,
	}
}

// Ensure Service implements Source
var _ Source = (*Service)(nil)

// NewDeck returns all 52 cards in a uniformly random order
func (s *Service) NewDeck() (*model.Deck, error) {
	cards := model.OrderedCards()
	Shuffle(s.random, cards)
	return model.NewDeck(cards)
}

// Shuffle permutes cards in place with Fisher-Yates
func Shuffle(rnd random.Random, cards []model.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
