package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MatchCache is the slice of the Redis wrapper the matchmaking usecase needs.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type findCacheKeyInput struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit"`
}

func findMatchesCacheKey(userID uuid.UUID, limit int) string {
	b, _ := json.Marshal(findCacheKeyInput{UserID: userID.String(), Limit: limit})
	sum := sha256.Sum256(b)
	return "matches:find:" + hex.EncodeToString(sum[:])
}

// Ranked results depend on every profile in the pool, so any profile change
// invalidates all cached find results, not just the edited user's.
const findMatchesCachePattern = "matches:find:*"
