package factory

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/moonlight21/internal/config"
	"github.com/mcoot/moonlight21/internal/model"
	"github.com/mcoot/moonlight21/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Several rounds at one table carry balances and records forward
func (s *IntegrationSuite) TestMultipleRoundsCarryBalance() {
	s.app.MockRandom.QueueString("TABLE001")

	// Round 1: natural against dealer 19, Round 2: bust, Round 3: push
	s.Require().NoError(s.app.StackDeck("AS", "10D", "KH", "9H"))
	s.Require().NoError(s.app.StackDeck("10S", "6D", "9H", "6H", "KC"))
	s.Require().NoError(s.app.StackDeck("10S", "KD", "JH", "QH"))

	controller := s.app.TableController
	table, err := controller.NewGame(s.ctx, []string{"Ann"})
	s.Require().NoError(err)
	id := table.ID

	_, err = controller.PlaceBet(s.ctx, id, 0, 100)
	s.Require().NoError(err)
	table, err = controller.Stand(s.ctx, id, 0)
	s.Require().NoError(err)
	s.Equal(int64(1200), table.Seats[0].Account.Balance)

	_, err = controller.ResetRound(s.ctx, id)
	s.Require().NoError(err)
	_, err = controller.PlaceBet(s.ctx, id, 0, 200)
	s.Require().NoError(err)
	table, err = controller.Hit(s.ctx, id, 0)
	s.Require().NoError(err)
	s.Equal(model.OutcomeBust, table.Seats[0].Outcome)
	s.Equal(int64(1000), table.Seats[0].Account.Balance)

	_, err = controller.ResetRound(s.ctx, id)
	s.Require().NoError(err)
	_, err = controller.PlaceBet(s.ctx, id, 0, 500)
	s.Require().NoError(err)
	table, err = controller.Stand(s.ctx, id, 0)
	s.Require().NoError(err)

	account := table.Seats[0].Account
	s.Equal(int64(1000), account.Balance)
	s.Zero(account.Bet)
	s.Equal(1, account.Wins)
	s.Equal(1, account.Losses)
	s.Equal(1, account.Ties)
	s.Equal(3, table.Round)

	s.Require().Len(table.History, 3)
	s.Equal(model.OutcomeNatural, table.History[0].Results[0].Outcome)
	s.Equal(model.OutcomeBust, table.History[1].Results[0].Outcome)
	s.Equal(model.OutcomePush, table.History[2].Results[0].Outcome)
}

// Test: A failed operation leaves the stored table untouched
func (s *IntegrationSuite) TestFailedOperationDoesNotPersist() {
	s.app.MockRandom.QueueString("TABLE001")
	cards, err := testutil.ParseCards("10S", "KD", "JH")
	s.Require().NoError(err)
	s.app.MockDecks.Queue(cards...)

	table, err := s.app.TableController.NewGame(s.ctx, []string{"Ann"})
	s.Require().NoError(err)

	_, err = s.app.TableController.PlaceBet(s.ctx, table.ID, 0, 5000)
	s.ErrorIs(err, model.ErrInvalidBet)

	stored, err := s.app.Storage.GetTable(s.ctx, table.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseNotStarted, stored.Phase)
	s.Equal(model.StartingBalance, stored.Seats[0].Account.Balance)
}

// Test: Every shuffled deck is a full, distinct 52 cards
func (s *IntegrationSuite) TestNewAppShufflesFullDecks() {
	seed := uint64(99)
	app, err := New(Config{ShuffleSeed: &seed})
	s.Require().NoError(err)

	table, err := app.TableController.NewGame(s.ctx, []string{"Ann", "Bob"})
	s.Require().NoError(err)
	s.Equal(model.DeckSize, table.Deck.Remaining())

	seen := make(map[model.Card]bool)
	for _, c := range table.Deck.Cards() {
		seen[c] = true
	}
	s.Len(seen, model.DeckSize)
}

func (s *IntegrationSuite) TestSeededAppsDealIdentically() {
	seed := uint64(7)
	first, err := New(Config{ShuffleSeed: &seed})
	s.Require().NoError(err)
	second, err := New(Config{ShuffleSeed: &seed})
	s.Require().NoError(err)

	a, err := first.TableController.NewGame(s.ctx, []string{"Ann"})
	s.Require().NoError(err)
	b, err := second.TableController.NewGame(s.ctx, []string{"Ann"})
	s.Require().NoError(err)

	s.Equal(a.Deck.Cards(), b.Deck.Cards())
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewWithRedisStorage() {
	mini := miniredis.RunT(s.T())

	cfg := config.Default()
	cfg.Storage.Type = config.StorageTypeRedis
	cfg.Storage.RedisURL = "redis://" + mini.Addr()

	app, err := New(ConfigFrom(cfg, testutil.NopLogger()))
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	table, err := app.TableController.NewGame(s.ctx, []string{"Ann"})
	s.Require().NoError(err)

	stored, err := app.TableController.GetTable(s.ctx, table.ID)
	s.Require().NoError(err)
	s.Equal(table.ID, stored.ID)
	s.True(mini.Exists("moonlight21:table:" + string(table.ID)))
}
