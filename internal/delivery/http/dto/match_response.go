package dto

import (
	"time"

	"skillswap/internal/domain/match"
	"skillswap/internal/domain/skill"
	"skillswap/internal/usecase"

	"github.com/google/uuid"
)

type RankedMatchResponse struct {
	UserID       uuid.UUID           `json:"user_id"`
	Name         string              `json:"name"`
	Bio          string              `json:"bio"`
	AvatarURL    string              `json:"avatar_url"`
	Score        float64             `json:"score"`
	TeachSkills  []skill.Skill       `json:"teach_skills"`
	LearnSkills  []skill.Skill       `json:"learn_skills"`
	MutualSkills []match.MutualSkill `json:"mutual_skills"`
}

func NewRankedMatchResponses(items []usecase.RankedMatch) []RankedMatchResponse {
	out := make([]RankedMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RankedMatchResponse{
			UserID:       it.UserID,
			Name:         it.Name,
			Bio:          it.Bio,
			AvatarURL:    it.AvatarURL,
			Score:        it.Score,
			TeachSkills:  it.TeachSkills,
			LearnSkills:  it.LearnSkills,
			MutualSkills: it.MutualSkills,
		})
	}
	return out
}

type MatchUserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
}

type UserMatchResponse struct {
	ID           uuid.UUID           `json:"id"`
	UserAID      uuid.UUID           `json:"user_a_id"`
	UserBID      uuid.UUID           `json:"user_b_id"`
	Score        float64             `json:"score"`
	MutualSkills []match.MutualSkill `json:"mutual_skills"`
	CreatedAt    time.Time           `json:"created_at"`
	UserA        MatchUserResponse   `json:"user_a"`
	UserB        MatchUserResponse   `json:"user_b"`
}

func NewUserMatchResponses(items []match.WithUsers) []UserMatchResponse {
	out := make([]UserMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, UserMatchResponse{
			ID:           it.ID,
			UserAID:      it.UserAID,
			UserBID:      it.UserBID,
			Score:        it.Score,
			MutualSkills: it.MutualSkills,
			CreatedAt:    it.CreatedAt,
			UserA: MatchUserResponse{
				ID:        it.UserA.ID,
				Name:      it.UserA.Name,
				Bio:       it.UserA.Bio,
				AvatarURL: it.UserA.AvatarURL,
			},
			UserB: MatchUserResponse{
				ID:        it.UserB.ID,
				Name:      it.UserB.Name,
				Bio:       it.UserB.Bio,
				AvatarURL: it.UserB.AvatarURL,
			},
		})
	}
	return out
}
