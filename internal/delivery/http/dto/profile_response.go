package dto

import (
	"time"

	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`

	TeachSkills []skill.Skill `json:"teach_skills"`
	LearnSkills []skill.Skill `json:"learn_skills"`

	FavoriteIceCream string `json:"favorite_ice_cream"`
	SpiritAnimal     string `json:"spirit_animal"`
	PersonalityType  string `json:"personality_type"`
	DailyRhythm      string `json:"daily_rhythm"`
	PersonalColor    string `json:"personal_color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:               p.UserID,
		Name:             p.Name,
		Bio:              p.Bio,
		AvatarURL:        p.AvatarURL,
		TeachSkills:      p.TeachSkills,
		LearnSkills:      p.LearnSkills,
		FavoriteIceCream: p.FavoriteIceCream,
		SpiritAnimal:     p.SpiritAnimal,
		PersonalityType:  p.PersonalityType,
		DailyRhythm:      p.DailyRhythm,
		PersonalColor:    p.PersonalColor,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
