package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the full replacement state of the editable
// profile fields, mirroring the client's PUT payload.
type UpdateProfileInput struct {
	Name      string
	Bio       string
	AvatarURL string

	TeachSkills []skill.Skill
	LearnSkills []skill.Skill

	FavoriteIceCream string
	SpiritAnimal     string
	PersonalityType  string
	DailyRhythm      string
	PersonalColor    string
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (profile.Profile, error)
}

type Profiles struct {
	repo   profile.Repository
	cache  MatchCache
	logger *log.Logger
}

func NewProfileUsecase(repo profile.Repository, cache MatchCache, logger *log.Logger) *Profiles {
	return &Profiles{repo: repo, cache: cache, logger: logger}
}

func (u *Profiles) GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrInvalidInput
	}
	p, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, ErrUserNotFound
		}
		return profile.Profile{}, fmt.Errorf("%w: load profile: %v", ErrStoreUnavailable, err)
	}
	return p, nil
}

func (u *Profiles) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrInvalidInput
	}

	teach, err := sanitizeSkills(in.TeachSkills)
	if err != nil {
		return profile.Profile{}, err
	}
	learn, err := sanitizeSkills(in.LearnSkills)
	if err != nil {
		return profile.Profile{}, err
	}

	// Identity rows are created by the external auth provider's first save,
	// so the write is an upsert keyed by the provider's user id.
	p, err := u.repo.Upsert(ctx, profile.Profile{
		UserID:           userID,
		Name:             strings.TrimSpace(in.Name),
		Bio:              in.Bio,
		AvatarURL:        strings.TrimSpace(in.AvatarURL),
		TeachSkills:      teach,
		LearnSkills:      learn,
		FavoriteIceCream: in.FavoriteIceCream,
		SpiritAnimal:     in.SpiritAnimal,
		PersonalityType:  in.PersonalityType,
		DailyRhythm:      in.DailyRhythm,
		PersonalColor:    in.PersonalColor,
	})
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: save profile: %v", ErrStoreUnavailable, err)
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, findMatchesCachePattern); err != nil && u.logger != nil {
			u.logger.Printf("profiles: cache invalidation failed: %v", err)
		}
	}

	return p, nil
}

// sanitizeSkills keeps list order and duplicates (both are display
// significant) but rejects nameless entries and unknown enum values.
// Missing category/proficiency default rather than fail, matching the
// client's new-skill form defaults.
func sanitizeSkills(skills []skill.Skill) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			return nil, ErrInvalidInput
		}
		if s.Category == "" {
			s.Category = "Other"
		}
		if s.Proficiency == "" {
			s.Proficiency = skill.ProficiencyBeginner
		}
		if !skill.ValidCategory(s.Category) || !skill.ValidProficiency(s.Proficiency) {
			return nil, ErrInvalidInput
		}
		out = append(out, s)
	}
	return out, nil
}
