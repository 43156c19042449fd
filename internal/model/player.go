package model

import "fmt"

const (
	// StartingBalance is the stake every new player account receives
	StartingBalance int64 = 1000
	// DefaultPlayerName is used when a player joins without a name
	DefaultPlayerName = "Player"
	// DealerName is the dealer account's display name
	DealerName = "Dealer"

	// StandardMultiplier pays 1:1
	StandardMultiplier = 1
	// NaturalMultiplier pays 2:1 on a two-card 21
	NaturalMultiplier = 2
)

// Account holds a party's money, wager, hand and lifetime record.
// The dealer is an account that never wagers
type Account struct {
	Name     string `json:"name"`
	IsDealer bool   `json:"is_dealer,omitempty"`
	Balance  int64  `json:"balance"`
	Bet      int64  `json:"bet"`
	Hand     *Hand  `json:"hand"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Ties     int    `json:"ties"`
}

// NewAccount creates a player account with the starting balance
func NewAccount(name string) *Account {
	if name == "" {
		name = DefaultPlayerName
	}
	return &Account{
		Name:    name,
		Balance: StartingBalance,
		Hand:    NewHand(),
	}
}

// NewDealer creates the dealer account
func NewDealer() *Account {
	return &Account{
		Name:     DealerName,
		IsDealer: true,
		Hand:     NewHand(),
	}
}

// PlaceBet moves amount from balance to bet. It fails without side effects
// unless 0 < amount <= balance
func (a *Account) PlaceBet(amount int64) error {
	if amount <= 0 || amount > a.Balance {
		return fmt.Errorf("%w: bet %d with balance %d", ErrInvalidBet, amount, a.Balance)
	}
	a.Balance -= amount
	a.Bet = amount
	return nil
}

// Win credits bet*(1+multiplier) and returns the amount credited
func (a *Account) Win(multiplier int) int64 {
	payout := a.Bet * int64(1+multiplier)
	a.Balance += payout
	a.Bet = 0
	a.Wins++
	return payout
}

// Lose forfeits the bet, which was already taken at placement
func (a *Account) Lose() int64 {
	a.Bet = 0
	a.Losses++
	return 0
}

// Push returns the bet unchanged and returns the amount credited
func (a *Account) Push() int64 {
	payout := a.Bet
	a.Balance += payout
	a.Bet = 0
	a.Ties++
	return payout
}

// ResetHand gives the account an empty hand; money and record are untouched
func (a *Account) ResetHand() {
	a.Hand = NewHand()
}
