package mocks

import (
	"strings"
	"sync"

	"github.com/mcoot/moonlight21/internal/dependencies/random"
)

// MockRandom replays queued results. Once a queue runs dry, Intn returns 0 and
// String returns a run of one alphabet letter, a different letter per call, so
// generated table IDs stay distinct
type MockRandom struct {
	mu     sync.Mutex
	ints   []int
	strs   []string
	minted int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.ints) == 0 {
		return 0
	}
	result := r.ints[0]
	r.ints = r.ints[1:]
	return result
}

// String returns the next queued result, or a filler string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.strs) > 0 {
		result := r.strs[0]
		r.strs = r.strs[1:]
		return result
	}
	if alphabet == "" {
		return ""
	}
	letter := alphabet[r.minted%len(alphabet)]
	r.minted++
	return strings.Repeat(string(letter), length)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints = append(r.ints, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strs = append(r.strs, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ints = nil
	r.strs = nil
	r.minted = 0
}
