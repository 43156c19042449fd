package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/moonlight21/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.TableTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newTable(id model.TableID) *model.Table {
	deck, err := model.NewDeck(model.OrderedCards())
	s.Require().NoError(err)
	_, _ = deck.Draw()

	player := model.NewAccount("Alice")
	s.Require().NoError(player.PlaceBet(100))
	player.Hand.AddCard(model.MustCard(model.Hearts, model.Ace))
	player.Hand.AddCard(model.MustCard(model.Clubs, model.King))

	return &model.Table{
		ID:         id,
		Phase:      model.PhasePlayerTurn,
		Dealer:     model.NewDealer(),
		Seats:      []*model.Seat{{Account: player, Status: model.SeatPlaying}},
		Deck:       deck,
		ActingSeat: 0,
		Round:      3,
		RoundID:    "round-3",
		History: []model.RoundSummary{{
			Round:       2,
			RoundID:     "round-2",
			DealerCards: []model.Card{model.MustCard(model.Spades, model.Ten), model.MustCard(model.Spades, model.Nine)},
			DealerScore: 19,
			Results:     []model.SeatResult{{Seat: 0, Name: "Alice", Outcome: model.OutcomeLose, Bet: 50}},
		}},
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetTable() {
	table := s.newTable("table-1")

	err := s.storage.SaveTable(s.ctx, table)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetTable(s.ctx, "table-1")
	s.Require().NoError(err)
	s.Equal(table.ID, retrieved.ID)
	s.Equal(model.PhasePlayerTurn, retrieved.Phase)
	s.Equal(3, retrieved.Round)
	s.Equal(int64(900), retrieved.Seats[0].Account.Balance)
	s.Equal(int64(100), retrieved.Seats[0].Account.Bet)
	s.True(retrieved.Seats[0].Account.Hand.IsNatural())
	s.True(retrieved.Dealer.IsDealer)
	s.Equal(table.Deck.Cards(), retrieved.Deck.Cards())
	s.Require().Len(retrieved.History, 1)
	s.Equal(19, retrieved.History[0].DealerScore)
	s.True(table.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestSaveTableSetsTTL() {
	_ = s.storage.SaveTable(s.ctx, s.newTable("table-1"))

	ttl := s.mini.TTL(tableKey("table-1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestTableExpires() {
	_ = s.storage.SaveTable(s.ctx, s.newTable("table-1"))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetTable(s.ctx, "table-1")
	s.ErrorIs(err, model.ErrTableNotFound)
}

func (s *StorageSuite) TestGetTableNotFound() {
	_, err := s.storage.GetTable(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrTableNotFound)
}

func (s *StorageSuite) TestGetTableRejectsCorruptDeck() {
	s.Require().NoError(s.mini.Set(tableKey("bad"), `{"id":"bad","deck":["AH","AH"]}`))

	_, err := s.storage.GetTable(s.ctx, "bad")
	s.ErrorIs(err, model.ErrDuplicateCard)
}

func (s *StorageSuite) TestDeleteTable() {
	_ = s.storage.SaveTable(s.ctx, s.newTable("table-1"))

	err := s.storage.DeleteTable(s.ctx, "table-1")
	s.Require().NoError(err)

	_, err = s.storage.GetTable(s.ctx, "table-1")
	s.ErrorIs(err, model.ErrTableNotFound)
}

func (s *StorageSuite) TestTableExists() {
	exists, err := s.storage.TableExists(s.ctx, "table-1")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveTable(s.ctx, s.newTable("table-1"))

	exists, err = s.storage.TableExists(s.ctx, "table-1")
	s.Require().NoError(err)
	s.True(exists)
}
