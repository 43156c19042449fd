package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/moonlight21/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newTable(id model.TableID) *model.Table {
	deck, err := model.NewDeck(model.OrderedCards())
	s.Require().NoError(err)

	player := model.NewAccount("Alice")
	player.Hand.AddCard(model.MustCard(model.Hearts, model.Ace))

	return &model.Table{
		ID:         id,
		Phase:      model.PhasePlayerTurn,
		Dealer:     model.NewDealer(),
		Seats:      []*model.Seat{{Account: player, Status: model.SeatPlaying}},
		Deck:       deck,
		ActingSeat: 0,
		Round:      1,
		CreatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetTable() {
	table := s.newTable("table-1")

	err := s.storage.SaveTable(s.ctx, table)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetTable(s.ctx, "table-1")
	s.Require().NoError(err)
	s.Equal(table.ID, retrieved.ID)
	s.Equal(table.Phase, retrieved.Phase)
	s.Equal("Alice", retrieved.Seats[0].Account.Name)
	s.Equal(table.Seats[0].Account.Hand.Cards(), retrieved.Seats[0].Account.Hand.Cards())
	s.Equal(table.Deck.Cards(), retrieved.Deck.Cards())
}

func (s *StorageSuite) TestGetTableReturnsACopy() {
	table := s.newTable("table-1")
	_ = s.storage.SaveTable(s.ctx, table)

	retrieved, err := s.storage.GetTable(s.ctx, "table-1")
	s.Require().NoError(err)
	retrieved.Seats[0].Account.Balance = 5
	_, _ = retrieved.Deck.Draw()

	again, err := s.storage.GetTable(s.ctx, "table-1")
	s.Require().NoError(err)
	s.Equal(model.StartingBalance, again.Seats[0].Account.Balance)
	s.Equal(model.DeckSize, again.Deck.Remaining())
}

func (s *StorageSuite) TestGetTableNotFound() {
	_, err := s.storage.GetTable(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrTableNotFound)
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
