package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"skillswap/internal/domain/match"
	"skillswap/internal/domain/matching"
	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"
	"skillswap/internal/ws"

	"github.com/google/uuid"
)

const DefaultFindLimit = 20

// RankedMatch is one candidate in a find-matches result, carrying everything
// the client renders plus the mutual-skill snapshot used if the user confirms
// the pairing.
type RankedMatch struct {
	UserID       uuid.UUID           `json:"user_id"`
	Name         string              `json:"name"`
	Bio          string              `json:"bio"`
	AvatarURL    string              `json:"avatar_url"`
	Score        float64             `json:"score"`
	TeachSkills  []skill.Skill       `json:"teach_skills"`
	LearnSkills  []skill.Skill       `json:"learn_skills"`
	MutualSkills []match.MutualSkill `json:"mutual_skills"`
}

type MatchmakingUsecase interface {
	FindMatches(ctx context.Context, userID uuid.UUID, limit int) ([]RankedMatch, error)
	CreateMatch(ctx context.Context, userAID, userBID uuid.UUID, score float64, mutualSkills []match.MutualSkill) (match.Match, error)
	ListUserMatches(ctx context.Context, userID uuid.UUID) ([]match.WithUsers, error)
}

type Matchmaking struct {
	profiles profile.Repository
	matches  match.Repository
	cache    MatchCache
	logger   *log.Logger
}

func NewMatchmakingUsecase(profiles profile.Repository, matches match.Repository, cache MatchCache, logger *log.Logger) *Matchmaking {
	return &Matchmaking{profiles: profiles, matches: matches, cache: cache, logger: logger}
}

func (u *Matchmaking) FindMatches(ctx context.Context, userID uuid.UUID, limit int) ([]RankedMatch, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		return nil, ErrInvalidInput
	}

	cacheKey := findMatchesCacheKey(userID, limit)
	if u.cache != nil {
		cached := make([]RankedMatch, 0)
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	requester, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: load profile: %v", ErrStoreUnavailable, err)
	}

	candidates, err := u.profiles.ListCandidates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load candidates: %v", ErrStoreUnavailable, err)
	}

	me := participantOf(requester)

	ranked := make([]RankedMatch, 0, len(candidates))
	for _, cand := range candidates {
		if cand.UserID == userID {
			continue
		}
		res := matching.Score(me, participantOf(cand))
		if res.Score == 0 && len(res.MutualSkills) == 0 {
			continue
		}
		ranked = append(ranked, RankedMatch{
			UserID:       cand.UserID,
			Name:         cand.Name,
			Bio:          cand.Bio,
			AvatarURL:    cand.AvatarURL,
			Score:        res.Score,
			TeachSkills:  cand.TeachSkills,
			LearnSkills:  cand.LearnSkills,
			MutualSkills: res.MutualSkills,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return strings.Compare(ranked[i].UserID.String(), ranked[j].UserID.String()) < 0
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, ranked, 0); err != nil && u.logger != nil {
			u.logger.Printf("matchmaking: cache set failed: %v", err)
		}
	}

	return ranked, nil
}

func (u *Matchmaking) CreateMatch(ctx context.Context, userAID, userBID uuid.UUID, score float64, mutualSkills []match.MutualSkill) (match.Match, error) {
	if userAID == uuid.Nil || userBID == uuid.Nil {
		return match.Match{}, ErrInvalidInput
	}
	if userAID == userBID {
		return match.Match{}, ErrSelfMatch
	}

	for _, id := range []uuid.UUID{userAID, userBID} {
		exists, err := u.profiles.ExistsByID(ctx, id)
		if err != nil {
			return match.Match{}, fmt.Errorf("%w: check profile: %v", ErrStoreUnavailable, err)
		}
		if !exists {
			return match.Match{}, ErrUserNotFound
		}
	}

	exists, err := u.matches.ExistsForPair(ctx, userAID, userBID)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: check pair: %v", ErrStoreUnavailable, err)
	}
	if exists {
		return match.Match{}, ErrMatchExists
	}

	created, err := u.matches.Create(ctx, match.Match{
		UserAID:      userAID,
		UserBID:      userBID,
		Score:        score,
		MutualSkills: mutualSkills,
	})
	if err != nil {
		if errors.Is(err, match.ErrDuplicatePair) {
			return match.Match{}, ErrMatchExists
		}
		return match.Match{}, fmt.Errorf("%w: create match: %v", ErrStoreUnavailable, err)
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, findMatchesCachePattern); err != nil && u.logger != nil {
			u.logger.Printf("matchmaking: cache invalidation failed: %v", err)
		}
	}

	ws.NotifyMatchCreated(created)
	return created, nil
}

func (u *Matchmaking) ListUserMatches(ctx context.Context, userID uuid.UUID) ([]match.WithUsers, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	out, err := u.matches.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list matches: %v", ErrStoreUnavailable, err)
	}
	return out, nil
}

func participantOf(p profile.Profile) matching.Participant {
	return matching.Participant{
		Teach: skillNames(p.TeachSkills),
		Learn: skillNames(p.LearnSkills),
	}
}

func skillNames(skills []skill.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}
