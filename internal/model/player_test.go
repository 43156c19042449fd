package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountDefaults(t *testing.T) {
	a := NewAccount("")
	assert.Equal(t, DefaultPlayerName, a.Name)
	assert.Equal(t, StartingBalance, a.Balance)
	assert.Zero(t, a.Bet)
	assert.Zero(t, a.Hand.Len())
}

func TestPlaceBetDebitsBalance(t *testing.T) {
	a := NewAccount("Ann")

	require.NoError(t, a.PlaceBet(100))
	assert.Equal(t, int64(900), a.Balance)
	assert.Equal(t, int64(100), a.Bet)
}

func TestPlaceBetWholeBalance(t *testing.T) {
	a := NewAccount("Ann")

	require.NoError(t, a.PlaceBet(StartingBalance))
	assert.Zero(t, a.Balance)
	assert.Equal(t, StartingBalance, a.Bet)
}

func TestPlaceBetRejectsInvalidAmounts(t *testing.T) {
	for _, balance := range []int64{0, 1, 50, 1000} {
		for _, amount := range []int64{balance + 1, 0, -1} {
			a := NewAccount("Ann")
			a.Balance = balance

			err := a.PlaceBet(amount)
			assert.ErrorIs(t, err, ErrInvalidBet, "balance %d amount %d", balance, amount)
			assert.Equal(t, balance, a.Balance)
			assert.Zero(t, a.Bet)
		}
	}
}

func TestWinStandard(t *testing.T) {
	a := NewAccount("Ann")
	require.NoError(t, a.PlaceBet(100))

	payout := a.Win(StandardMultiplier)
	assert.Equal(t, int64(200), payout)
	assert.Equal(t, int64(1100), a.Balance)
	assert.Zero(t, a.Bet)
	assert.Equal(t, 1, a.Wins)
}

func TestWinNatural(t *testing.T) {
	a := NewAccount("Ann")
	require.NoError(t, a.PlaceBet(100))

	payout := a.Win(NaturalMultiplier)
	assert.Equal(t, int64(300), payout)
	assert.Equal(t, int64(1200), a.Balance)
	assert.Equal(t, 1, a.Wins)
}

func TestLose(t *testing.T) {
	a := NewAccount("Ann")
	require.NoError(t, a.PlaceBet(100))

	a.Lose()
	assert.Equal(t, int64(900), a.Balance)
	assert.Zero(t, a.Bet)
	assert.Equal(t, 1, a.Losses)
}

func TestPush(t *testing.T) {
	a := NewAccount("Ann")
	require.NoError(t, a.PlaceBet(100))

	payout := a.Push()
	assert.Equal(t, int64(100), payout)
	assert.Equal(t, StartingBalance, a.Balance)
	assert.Zero(t, a.Bet)
	assert.Equal(t, 1, a.Ties)
}

func TestResetHandKeepsMoney(t *testing.T) {
	a := NewAccount("Ann")
	require.NoError(t, a.PlaceBet(100))
	a.Hand.AddCard(MustCard(Spades, Ace))
	a.Wins = 3

	a.ResetHand()
	assert.Zero(t, a.Hand.Len())
	assert.Equal(t, int64(900), a.Balance)
	assert.Equal(t, int64(100), a.Bet)
	assert.Equal(t, 3, a.Wins)
}
