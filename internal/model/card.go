package model

import (
	"fmt"
	"strings"
)

// Suit is one of the four French suits
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck construction order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Symbol returns the suit's display glyph
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Initial returns the single-letter short form (H, D, C, S)
func (s Suit) Initial() string {
	if !s.Valid() {
		return "?"
	}
	return strings.ToUpper(string(s)[:1])
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid returns true if s is one of the four suits
func (s Suit) Valid() bool {
	switch s {
	case Hearts, Diamonds, Clubs, Spades:
		return true
	}
	return false
}

// ParseSuit accepts a suit name, initial or glyph
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hearts", "h", "♥":
		return Hearts, nil
	case "diamonds", "d", "♦":
		return Diamonds, nil
	case "clubs", "c", "♣":
		return Clubs, nil
	case "spades", "s", "♠":
		return Spades, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// Rank is the face of a card
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Ranks lists every rank in deck construction order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Valid returns true if r is one of the thirteen ranks
func (r Rank) Valid() bool {
	for _, rank := range Ranks {
		if r == rank {
			return true
		}
	}
	return false
}

// ParseRank accepts a rank token such as "7", "10", "q" or "A"
func ParseRank(s string) (Rank, error) {
	r := Rank(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	return r, nil
}

// Card is an immutable playing card
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a card, rejecting unknown suits and ranks
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, suit)
	}
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is NewCard for compile-time constant cards; it panics on invalid input
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard parses a short token: rank followed by suit initial or glyph ("AH", "10♠", "qd")
func ParseCard(token string) (Card, error) {
	token = strings.TrimSpace(token)
	runes := []rune(token)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, token)
	}
	rank, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return Card{}, err
	}
	return NewCard(suit, rank)
}

// Suit returns the card's suit
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the card's rank
func (c Card) Rank() Rank {
	return c.rank
}

// IsAce returns true for aces
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// Value returns the card's point value. Aces are always 11 here; Hand reduces them.
// The zero Card is worth 0
func (c Card) Value() int {
	switch c.rank {
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten, Jack, Queen, King:
		return 10
	case Ace:
		return 11
	default:
		return 0
	}
}

// Display returns rank followed by the suit glyph, e.g. "A♥"
func (c Card) Display() string {
	return string(c.rank) + c.suit.Symbol()
}

// Code returns the ASCII short token, e.g. "AH"
func (c Card) Code() string {
	return string(c.rank) + c.suit.Initial()
}

func (c Card) String() string {
	return c.Display()
}

// IsZero returns true for the zero Card
func (c Card) IsZero() bool {
	return c.suit == "" && c.rank == ""
}

// MarshalText encodes the card as its short code
func (c Card) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, fmt.Errorf("%w: empty card", ErrInvalidRank)
	}
	return []byte(c.Code()), nil
}

// UnmarshalText decodes a short code produced by MarshalText
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
