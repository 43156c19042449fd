package redis

import (
	"fmt"

	"github.com/mcoot/moonlight21/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "moonlight21"

// tableKey returns the Redis key for a Table
func tableKey(id model.TableID) string {
	return fmt.Sprintf("%s:table:%s", keyPrefix, id)
}
