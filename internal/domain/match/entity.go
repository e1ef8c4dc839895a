package match

import (
	"time"

	"github.com/google/uuid"
)

// Direction tags which side of a pairing teaches a mutual skill.
type Direction string

const (
	// DirectionAToB: user A teaches, user B learns.
	DirectionAToB Direction = "a_to_b"
	// DirectionBToA: user B teaches, user A learns.
	DirectionBToA Direction = "b_to_a"
)

// MutualSkill is one shared skill with its teaching direction. Produced by
// the scoring engine and frozen into the match record at creation time.
type MutualSkill struct {
	Skill     string    `json:"skill"`
	Direction Direction `json:"direction"`
}

// Match is a persisted, user-confirmed pairing. The (user_a, user_b) order
// records who initiated; the relationship itself is undirected and unique
// per unordered pair.
type Match struct {
	ID           uuid.UUID
	UserAID      uuid.UUID
	UserBID      uuid.UUID
	Score        float64
	MutualSkills []MutualSkill
	CreatedAt    time.Time
}

// UserSummary is the counterpart info nested into match listings.
type UserSummary struct {
	ID        uuid.UUID
	Name      string
	Bio       string
	AvatarURL string
}

// WithUsers is a match joined with both participants' summaries.
type WithUsers struct {
	Match
	UserA UserSummary
	UserB UserSummary
}
