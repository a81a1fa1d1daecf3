package redis

import (
	"fmt"

	"github.com/mcoot/ghostgame/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "ghost"

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for the dictionary word LIST
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
