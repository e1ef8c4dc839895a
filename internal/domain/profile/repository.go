package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (Profile, error)
	ExistsByID(ctx context.Context, userID uuid.UUID) (bool, error)

	// ListCandidates returns the candidate pool for matching, never
	// including excludeID.
	ListCandidates(ctx context.Context, excludeID uuid.UUID) ([]Profile, error)

	// Upsert replaces the editable fields, creating the row on first save.
	Upsert(ctx context.Context, p Profile) (Profile, error)
}
