package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValue(t *testing.T) {
	tests := []struct {
		rank     Rank
		expected int
	}{
		{Two, 2},
		{Three, 3},
		{Four, 4},
		{Five, 5},
		{Six, 6},
		{Seven, 7},
		{Eight, 8},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
		{Ace, 11},
	}

	for _, tt := range tests {
		t.Run(string(tt.rank), func(t *testing.T) {
			c, err := NewCard(Spades, tt.rank)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Value())
		})
	}
}

func TestCardValueSumsFullDeck(t *testing.T) {
	total := 0
	for _, c := range OrderedCards() {
		assert.Positive(t, c.Value(), c.Code())
		total += c.Value()
	}
	// Four suits of 2..9, four tens, and aces at 11
	assert.Equal(t, 4*(44+40+11), total)
	assert.Zero(t, Card{}.Value())
}

func TestNewCardRejectsUnknownRank(t *testing.T) {
	_, err := NewCard(Hearts, Rank("1"))
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = NewCard(Hearts, Rank("Z"))
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestNewCardRejectsUnknownSuit(t *testing.T) {
	_, err := NewCard(Suit("stars"), Ace)
	assert.ErrorIs(t, err, ErrInvalidSuit)
}

func TestCardDisplay(t *testing.T) {
	assert.Equal(t, "A♥", MustCard(Hearts, Ace).Display())
	assert.Equal(t, "10♠", MustCard(Spades, Ten).Display())
	assert.Equal(t, "Q♦", MustCard(Diamonds, Queen).String())
	assert.Equal(t, "7C", MustCard(Clubs, Seven).Code())
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		token string
		suit  Suit
		rank  Rank
	}{
		{"AH", Hearts, Ace},
		{"10s", Spades, Ten},
		{"qd", Diamonds, Queen},
		{"7♣", Clubs, Seven},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			c, err := ParseCard(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.suit, c.Suit())
			assert.Equal(t, tt.rank, c.Rank())
		})
	}
}

func TestParseCardInvalid(t *testing.T) {
	_, err := ParseCard("1H")
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = ParseCard("AX")
	assert.ErrorIs(t, err, ErrInvalidSuit)

	_, err = ParseCard("A")
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestCardJSON(t *testing.T) {
	cards := []Card{MustCard(Hearts, Ace), MustCard(Clubs, Ten)}

	data, err := json.Marshal(cards)
	require.NoError(t, err)
	assert.JSONEq(t, `["AH","10C"]`, string(data))

	var decoded []Card
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cards, decoded)
}

func TestSuitColour(t *testing.T) {
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Clubs.IsRed())
	assert.False(t, Spades.IsRed())
}
