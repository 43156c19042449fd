package table

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/moonlight21/internal/dependencies/clock"
	"github.com/mcoot/moonlight21/internal/dependencies/random"
	"github.com/mcoot/moonlight21/internal/model"
	"github.com/mcoot/moonlight21/internal/services/deck"
	"github.com/mcoot/moonlight21/internal/services/settlement"
	"github.com/mcoot/moonlight21/internal/storage"
)

const (
	tableIDLength   = 8
	tableIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	tableIDAttempts = 5
)

// Controller runs the round state machine for every table
type Controller struct {
	storage  storage.Storage
	decks    deck.Source
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
	locks    *tableLocks
	observer Observer
}

// Observer is told about every committed table change, while the table is still locked.
// Implementations must not block
type Observer interface {
	TableUpdated(table *model.Table)
	TableDeleted(id model.TableID)
}

type nopObserver struct{}

func (nopObserver) TableUpdated(*model.Table)  {}
func (nopObserver) TableDeleted(model.TableID) {}

// NewController creates a new table Controller
func NewController(
	storage storage.Storage,
	decks deck.Source,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		decks:    decks,
		clock:    clock,
		random:   random,
		logger:   logger,
		locks:    newTableLocks(),
		observer: nopObserver{},
	}
}

// SetObserver registers o to hear about table changes
func (c *Controller) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	c.observer = o
}

// NewGame seats a fresh player account for each name and waits for bets
func (c *Controller) NewGame(ctx context.Context, names []string) (*model.Table, error) {
	if len(names) == 0 {
		return nil, model.ErrNoPlayers
	}

	id, err := c.newTableID(ctx)
	if err != nil {
		return nil, err
	}

	d, err := c.decks.NewDeck()
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	table := &model.Table{
		ID:         id,
		Phase:      model.PhaseNotStarted,
		Dealer:     model.NewDealer(),
		Seats:      make([]*model.Seat, 0, len(names)),
		Deck:       d,
		ActingSeat: -1,
		History:    []model.RoundSummary{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, name := range names {
		table.Seats = append(table.Seats, model.NewSeat(model.NewAccount(name)))
	}

	if err := c.storage.SaveTable(ctx, table); err != nil {
		c.logger.Error("failed to save table",
			slog.String("table_id", string(table.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("table created",
		slog.String("table_id", string(id)),
		slog.Int("seat_count", len(table.Seats)),
	)

	return table, nil
}

func (c *Controller) newTableID(ctx context.Context) (model.TableID, error) {
	for range tableIDAttempts {
		id := model.TableID(c.random.String(tableIDLength, tableIDAlphabet))
		exists, err := c.storage.TableExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("no free table id after %d attempts", tableIDAttempts)
}

// newRoundID builds a version 4 UUID from the controller's random source
func (c *Controller) newRoundID() (string, error) {
	var b [16]byte
	for i := range b {
		b[i] = byte(c.random.Intn(256))
	}
	id, err := uuid.NewRandomFromReader(bytes.NewReader(b[:]))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// GetTable retrieves a table by ID
func (c *Controller) GetTable(ctx context.Context, id model.TableID) (*model.Table, error) {
	return c.storage.GetTable(ctx, id)
}

// DeleteTable removes a table and everything seated at it
func (c *Controller) DeleteTable(ctx context.Context, id model.TableID) error {
	unlock := c.locks.lock(id)
	defer unlock()

	exists, err := c.storage.TableExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrTableNotFound
	}

	if err := c.storage.DeleteTable(ctx, id); err != nil {
		return err
	}
	c.observer.TableDeleted(id)

	c.logger.Info("table deleted", slog.String("table_id", string(id)))
	return nil
}

// PlaceBet takes a seat's wager. Once every seat that can play has bet, the
// initial hands are dealt and the first seat acts
func (c *Controller) PlaceBet(ctx context.Context, id model.TableID, seatIdx int, amount int64) (*model.Table, error) {
	return c.update(ctx, id, func(table *model.Table) error {
		if table.Phase != model.PhaseNotStarted && table.Phase != model.PhaseBetPlaced {
			return model.ErrWrongPhase
		}

		seat, err := table.Seat(seatIdx)
		if err != nil {
			return err
		}
		switch seat.Status {
		case model.SeatWaiting:
		case model.SeatOut:
			return fmt.Errorf("%w: seat %d has no balance", model.ErrInvalidBet, seatIdx)
		default:
			return model.ErrBetOutstanding
		}

		if err := seat.Account.PlaceBet(amount); err != nil {
			return err
		}
		seat.Stake = amount
		seat.Status = model.SeatBet
		table.Phase = model.PhaseBetPlaced

		if table.AllBetsPlaced() {
			return c.deal(table)
		}
		return nil
	})
}

// Hit draws a card for the acting seat. A bust settles the seat at once
func (c *Controller) Hit(ctx context.Context, id model.TableID, seatIdx int) (*model.Table, error) {
	return c.update(ctx, id, func(table *model.Table) error {
		seat, err := c.actingSeat(table, seatIdx)
		if err != nil {
			return err
		}

		card, err := table.Deck.Draw()
		if err != nil {
			return err
		}
		seat.Account.Hand.AddCard(card)

		if !seat.Account.Hand.IsBust() {
			return nil
		}

		seat.Status = model.SeatBust
		seat.Outcome = model.OutcomeBust
		seat.Payout, err = settlement.Apply(seat.Account, model.OutcomeBust)
		if err != nil {
			return err
		}

		c.logger.Info("seat bust",
			slog.String("table_id", string(table.ID)),
			slog.Int("seat", seatIdx),
			slog.Int("score", seat.Account.Hand.Score()),
		)

		return c.advance(table)
	})
}

// Stand ends the acting seat's turn
func (c *Controller) Stand(ctx context.Context, id model.TableID, seatIdx int) (*model.Table, error) {
	return c.update(ctx, id, func(table *model.Table) error {
		seat, err := c.actingSeat(table, seatIdx)
		if err != nil {
			return err
		}
		seat.Status = model.SeatStood
		return c.advance(table)
	})
}

// ResetRound clears hands and bets and brings in a fresh deck.
// Balances and lifetime records carry over
func (c *Controller) ResetRound(ctx context.Context, id model.TableID) (*model.Table, error) {
	return c.update(ctx, id, func(table *model.Table) error {
		if table.Phase != model.PhaseSettled && table.Phase != model.PhaseNotStarted {
			return model.ErrRoundInProgress
		}

		d, err := c.decks.NewDeck()
		if err != nil {
			return err
		}

		table.Deck = d
		table.Dealer.ResetHand()
		for _, seat := range table.Seats {
			seat.Reset()
		}
		table.ActingSeat = -1
		table.Phase = model.PhaseNotStarted
		return nil
	})
}

// update loads a table under its lock, applies fn and saves the result.
// Nothing is saved when fn fails, so a failed operation leaves the table as it was
func (c *Controller) update(ctx context.Context, id model.TableID, fn func(*model.Table) error) (*model.Table, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	table, err := c.storage.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(table); err != nil {
		return nil, err
	}

	table.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveTable(ctx, table); err != nil {
		c.logger.Error("failed to save table",
			slog.String("table_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.observer.TableUpdated(table)
	return table, nil
}

// actingSeat validates that seatIdx may hit or stand right now
func (c *Controller) actingSeat(table *model.Table, seatIdx int) (*model.Seat, error) {
	if table.Phase != model.PhasePlayerTurn {
		return nil, model.ErrWrongPhase
	}
	seat, err := table.Seat(seatIdx)
	if err != nil {
		return nil, err
	}
	if seatIdx != table.ActingSeat {
		return nil, model.ErrNotSeatTurn
	}
	return seat, nil
}

// deal gives two cards to every betting seat and the dealer, one card per party per pass
func (c *Controller) deal(table *model.Table) error {
	for pass := 0; pass < 2; pass++ {
		for _, seat := range table.Seats {
			if seat.Status != model.SeatBet {
				continue
			}
			if err := drawInto(table.Deck, seat.Account.Hand); err != nil {
				return err
			}
		}
		if err := drawInto(table.Deck, table.Dealer.Hand); err != nil {
			return err
		}
	}

	for _, seat := range table.Seats {
		if seat.Status == model.SeatBet {
			seat.Status = model.SeatPlaying
		}
	}

	table.Round++
	roundID, err := c.newRoundID()
	if err != nil {
		return err
	}
	table.RoundID = roundID
	table.Phase = model.PhasePlayerTurn
	table.ActingSeat = table.NextPlayingSeat(0)

	c.logger.Info("round dealt",
		slog.String("table_id", string(table.ID)),
		slog.Int("round", table.Round),
		slog.String("round_id", table.RoundID),
	)
	return nil
}

// advance passes the turn to the next seat still playing. When none is left the
// dealer plays out against any standing seat and the round settles
func (c *Controller) advance(table *model.Table) error {
	if next := table.NextPlayingSeat(table.ActingSeat + 1); next >= 0 {
		table.ActingSeat = next
		return nil
	}
	table.ActingSeat = -1

	if table.AnyStanding() {
		table.Phase = model.PhaseDealerTurn
		if err := PlayDealer(table.Dealer.Hand, table.Deck); err != nil {
			return err
		}
	}
	return c.settle(table)
}

// settle pays out every seat not already settled and records the round
func (c *Controller) settle(table *model.Table) error {
	dealerHand := table.Dealer.Hand

	for i, seat := range table.Seats {
		if !seat.InRound() || seat.IsSettled() {
			continue
		}
		if seat.Account.Hand.IsBust() {
			return fmt.Errorf("%w: seat %d", model.ErrSettlementInvariant, i)
		}

		outcome := settlement.Decide(seat.Account.Hand, dealerHand)
		payout, err := settlement.Apply(seat.Account, outcome)
		if err != nil {
			return err
		}
		seat.Outcome = outcome
		seat.Payout = payout
		seat.Status = model.SeatDone
	}

	table.Phase = model.PhaseSettled
	summary := model.RoundSummary{
		Round:       table.Round,
		RoundID:     table.RoundID,
		DealerCards: dealerHand.Cards(),
		DealerScore: dealerHand.Score(),
		Results:     make([]model.SeatResult, 0, len(table.Seats)),
		CompletedAt: c.clock.Now(),
	}
	for i, seat := range table.Seats {
		if !seat.InRound() {
			continue
		}
		summary.Results = append(summary.Results, model.SeatResult{
			Seat:    i,
			Name:    seat.Account.Name,
			Cards:   seat.Account.Hand.Cards(),
			Score:   seat.Account.Hand.Score(),
			Outcome: seat.Outcome,
			Bet:     seat.Stake,
			Payout:  seat.Payout,
		})
	}
	table.AddHistory(summary)

	c.logger.Info("round settled",
		slog.String("table_id", string(table.ID)),
		slog.Int("round", table.Round),
		slog.Int("dealer_score", summary.DealerScore),
	)
	return nil
}

// PlayDealer draws for the dealer while the score is below 17. Every 17 stands, soft or hard
func PlayDealer(hand *model.Hand, d *model.Deck) error {
	for hand.Score() < model.DealerStandScore {
		if err := drawInto(d, hand); err != nil {
			return err
		}
	}
	return nil
}

func drawInto(d *model.Deck, hand *model.Hand) error {
	card, err := d.Draw()
	if err != nil {
		return err
	}
	hand.AddCard(card)
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, names []string) (*model.Table, error)
	GetTable(ctx context.Context, id model.TableID) (*model.Table, error)
	DeleteTable(ctx context.Context, id model.TableID) error
	PlaceBet(ctx context.Context, id model.TableID, seat int, amount int64) (*model.Table, error)
	Hit(ctx context.Context, id model.TableID, seat int) (*model.Table, error)
	Stand(ctx context.Context, id model.TableID, seat int) (*model.Table, error)
	ResetRound(ctx context.Context, id model.TableID) (*model.Table, error)
}

var _ ControllerInterface = (*Controller)(nil)
