package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mcoot/moonlight21/internal/model"
	"github.com/mcoot/moonlight21/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Tables are copied on the way in and out so callers never share state
type Storage struct {
	mu sync.RWMutex

	tables map[model.TableID][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		tables: make(map[model.TableID][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Table operations

func (s *Storage) SaveTable(ctx context.Context, table *model.Table) error {
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table.ID] = data
	return nil
}

func (s *Storage) GetTable(ctx context.Context, id model.TableID) (*model.Table, error) {
	s.mu.RLock()
	data, ok := s.tables[id]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrTableNotFound
	}

	var table model.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *Storage) DeleteTable(ctx context.Context, id model.TableID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, id)
	return nil
}

func (s *Storage) TableExists(ctx context.Context, id model.TableID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tables[id]
	return ok, nil
}
