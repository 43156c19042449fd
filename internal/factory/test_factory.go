package factory

import (
	"time"

	"github.com/mcoot/moonlight21/internal/dependencies/mocks"
	"github.com/mcoot/moonlight21/internal/storage/memory"
	"github.com/mcoot/moonlight21/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockDecks  *mocks.StackedDecks
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockDecks := mocks.NewStackedDecks()

	app := newWithDependencies(store, mockDecks, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockDecks:  mockDecks,
	}
}

// StackDeck queues a deck for the next new table or reset whose first draws
// are the given card codes, e.g. "AS", "10H"
func (t *TestApp) StackDeck(codes ...string) error {
	cards, err := testutil.ParseCards(codes...)
	if err != nil {
		return err
	}
	t.MockDecks.Queue(cards...)
	return nil
}
