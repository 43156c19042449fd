package table

import (
	"sync"

	"github.com/mcoot/moonlight21/internal/model"
)

// tableLocks hands out one mutex per table so operations on a table never interleave.
// An entry lives only while someone holds or waits on it
type tableLocks struct {
	mu    sync.Mutex
	locks map[model.TableID]*tableLock
}

type tableLock struct {
	mu   sync.Mutex
	refs int
}

func newTableLocks() *tableLocks {
	return &tableLocks{locks: make(map[model.TableID]*tableLock)}
}

// lock blocks until the table's mutex is held and returns its unlock func
func (l *tableLocks) lock(id model.TableID) func() {
	l.mu.Lock()
	tl, ok := l.locks[id]
	if !ok {
		tl = &tableLock{}
		l.locks[id] = tl
	}
	tl.refs++
	l.mu.Unlock()

	tl.mu.Lock()
	return func() {
		tl.mu.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()
		tl.refs--
		if tl.refs == 0 {
			delete(l.locks, id)
		}
	}
}

// size returns the number of tables with a live lock entry
func (l *tableLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
