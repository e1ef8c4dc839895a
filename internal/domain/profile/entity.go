package profile

import (
	"time"

	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

// Profile is the full per-user record. UserID comes from the external
// identity provider and is immutable; everything else is user-editable.
type Profile struct {
	UserID    uuid.UUID
	Name      string
	Bio       string
	AvatarURL string

	TeachSkills []skill.Skill
	LearnSkills []skill.Skill

	// Soft-matching attributes, stored and returned but not consumed by the
	// scoring engine.
	FavoriteIceCream string
	SpiritAnimal     string
	PersonalityType  string
	DailyRhythm      string
	PersonalColor    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
