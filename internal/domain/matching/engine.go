package matching

import (
	"strings"

	"skillswap/internal/domain/match"
	"skillswap/internal/domain/skill"
)

// Participant is one side of a reciprocal comparison: the raw skill names a
// user offers to teach and wants to learn, in list order. Inputs are never
// mutated.
type Participant struct {
	Teach []string
	Learn []string
}

type Result struct {
	Score        float64
	MutualSkills []match.MutualSkill
}

// Score quantifies how well two users satisfy each other's wants.
//
// A skill matches when the trimmed, lowercased names are equal. Each
// direction contributes the set of distinct normalized names A teaches that B
// wants (and vice versa); a name matched in both directions appears twice in
// MutualSkills, once per direction. The score is the combined directional
// overlap divided by the size of both users' joint teach+learn vocabulary,
// capped at 1. It is 0 exactly when neither side teaches anything the other
// wants.
func Score(a, b Participant) Result {
	aToB := overlap(a.Teach, b.Learn)
	bToA := overlap(b.Teach, a.Learn)

	mutual := make([]match.MutualSkill, 0, len(aToB)+len(bToA))
	for _, name := range aToB {
		mutual = append(mutual, match.MutualSkill{Skill: name, Direction: match.DirectionAToB})
	}
	for _, name := range bToA {
		mutual = append(mutual, match.MutualSkill{Skill: name, Direction: match.DirectionBToA})
	}

	if len(mutual) == 0 {
		return Result{Score: 0, MutualSkills: mutual}
	}

	vocab := make(map[string]struct{})
	addVocab(vocab, a.Teach)
	addVocab(vocab, a.Learn)
	addVocab(vocab, b.Teach)
	addVocab(vocab, b.Learn)

	score := float64(len(aToB)+len(bToA)) / float64(len(vocab))
	if score > 1 {
		score = 1
	}

	return Result{Score: score, MutualSkills: mutual}
}

// overlap returns the distinct teach-list entries whose normalized names
// appear in the learn list, in first-occurrence teach-list order. The
// reported name is the teaching user's spelling, trimmed.
func overlap(teach, learn []string) []string {
	wanted := make(map[string]struct{}, len(learn))
	for _, name := range learn {
		n := skill.NormalizeName(name)
		if n == "" {
			continue
		}
		wanted[n] = struct{}{}
	}

	seen := make(map[string]struct{}, len(teach))
	out := make([]string, 0, len(teach))
	for _, name := range teach {
		n := skill.NormalizeName(name)
		if n == "" {
			continue
		}
		if _, ok := wanted[n]; !ok {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, strings.TrimSpace(name))
	}
	return out
}

func addVocab(vocab map[string]struct{}, names []string) {
	for _, name := range names {
		n := skill.NormalizeName(name)
		if n == "" {
			continue
		}
		vocab[n] = struct{}{}
	}
}
