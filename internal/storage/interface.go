package storage

import (
	"context"

	"github.com/mcoot/moonlight21/internal/model"
)

// Storage defines the interface for table session storage.
// Tables live only as long as the process (memory) or the TTL (redis)
type Storage interface {
	// Table operations
	SaveTable(ctx context.Context, table *model.Table) error
	GetTable(ctx context.Context, id model.TableID) (*model.Table, error)
	DeleteTable(ctx context.Context, id model.TableID) error
	TableExists(ctx context.Context, id model.TableID) (bool, error)
}
