package match

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrDuplicatePair is returned when a match already exists for the unordered
// pair, whether detected by the pre-check or by the storage unique index.
var ErrDuplicatePair = errors.New("match already exists for pair")

type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	ExistsForPair(ctx context.Context, userAID, userBID uuid.UUID) (bool, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]WithUsers, error)
}
