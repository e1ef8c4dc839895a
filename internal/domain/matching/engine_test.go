package matching

import (
	"testing"

	"skillswap/internal/domain/match"
)

func TestScore_ReciprocalPair(t *testing.T) {
	alice := Participant{Teach: []string{"React"}, Learn: []string{"Python"}}
	bob := Participant{Teach: []string{"Python"}, Learn: []string{"React"}}

	res := Score(alice, bob)

	if res.Score <= 0 {
		t.Fatalf("expected positive score, got %v", res.Score)
	}
	if res.Score > 1 {
		t.Fatalf("expected score <= 1, got %v", res.Score)
	}
	want := []match.MutualSkill{
		{Skill: "React", Direction: match.DirectionAToB},
		{Skill: "Python", Direction: match.DirectionBToA},
	}
	if len(res.MutualSkills) != len(want) {
		t.Fatalf("expected %d mutual skills, got %d", len(want), len(res.MutualSkills))
	}
	for i, ms := range want {
		if res.MutualSkills[i] != ms {
			t.Fatalf("mutual skill %d: expected %+v, got %+v", i, ms, res.MutualSkills[i])
		}
	}
}

func TestScore_NoOverlap(t *testing.T) {
	a := Participant{Teach: []string{"Go"}, Learn: []string{"Rust"}}
	b := Participant{Teach: []string{"Figma"}, Learn: []string{"Photoshop"}}

	res := Score(a, b)

	if res.Score != 0 {
		t.Fatalf("expected score 0, got %v", res.Score)
	}
	if len(res.MutualSkills) != 0 {
		t.Fatalf("expected no mutual skills, got %v", res.MutualSkills)
	}
}

func TestScore_EmptyProfiles(t *testing.T) {
	res := Score(Participant{}, Participant{Teach: []string{"Go"}})
	if res.Score != 0 {
		t.Fatalf("expected score 0, got %v", res.Score)
	}
	if len(res.MutualSkills) != 0 {
		t.Fatalf("expected no mutual skills, got %v", res.MutualSkills)
	}
}

func TestScore_CaseAndWhitespaceInsensitive(t *testing.T) {
	a := Participant{Teach: []string{"  React "}}
	b := Participant{Learn: []string{"react"}}

	res := Score(a, b)

	if res.Score <= 0 {
		t.Fatalf("expected positive score, got %v", res.Score)
	}
	if len(res.MutualSkills) != 1 {
		t.Fatalf("expected 1 mutual skill, got %d", len(res.MutualSkills))
	}
	if res.MutualSkills[0].Skill != "React" {
		t.Fatalf("expected trimmed teach-side spelling, got %q", res.MutualSkills[0].Skill)
	}
	if res.MutualSkills[0].Direction != match.DirectionAToB {
		t.Fatalf("unexpected direction %q", res.MutualSkills[0].Direction)
	}
}

func TestScore_MirroredArgumentsSwapDirections(t *testing.T) {
	a := Participant{Teach: []string{"React", "CSS"}, Learn: []string{"Python"}}
	b := Participant{Teach: []string{"Python"}, Learn: []string{"React"}}

	ab := Score(a, b)
	ba := Score(b, a)

	if len(ab.MutualSkills) != len(ba.MutualSkills) {
		t.Fatalf("expected same pair count, got %d vs %d", len(ab.MutualSkills), len(ba.MutualSkills))
	}

	// Pairs in one call must reappear in the mirrored call with the
	// direction swapped.
	forward := map[string]match.Direction{}
	for _, ms := range ab.MutualSkills {
		forward[ms.Skill] = ms.Direction
	}
	for _, ms := range ba.MutualSkills {
		dir, ok := forward[ms.Skill]
		if !ok {
			t.Fatalf("skill %q missing from mirrored result", ms.Skill)
		}
		if dir == ms.Direction {
			t.Fatalf("skill %q: expected swapped direction, both are %q", ms.Skill, dir)
		}
	}
}

func TestScore_BothDirectionsSameSkillAppearsTwice(t *testing.T) {
	a := Participant{Teach: []string{"Guitar"}, Learn: []string{"Guitar"}}
	b := Participant{Teach: []string{"Guitar"}, Learn: []string{"Guitar"}}

	res := Score(a, b)

	if len(res.MutualSkills) != 2 {
		t.Fatalf("expected 2 entries (one per direction), got %d", len(res.MutualSkills))
	}
	if res.MutualSkills[0].Direction != match.DirectionAToB || res.MutualSkills[1].Direction != match.DirectionBToA {
		t.Fatalf("unexpected directions: %+v", res.MutualSkills)
	}
	if res.Score != 1 {
		t.Fatalf("expected score capped at 1, got %v", res.Score)
	}
}

func TestScore_DuplicateTeachEntriesCollapsePerDirection(t *testing.T) {
	a := Participant{Teach: []string{"React", "react", " REACT "}}
	b := Participant{Learn: []string{"React"}}

	res := Score(a, b)

	if len(res.MutualSkills) != 1 {
		t.Fatalf("expected duplicates collapsed within a direction, got %d entries", len(res.MutualSkills))
	}
}

func TestScore_MonotoneInMutualCount(t *testing.T) {
	base := Participant{Teach: []string{"React", "CSS"}, Learn: []string{"Python", "Go"}}
	oneMatch := Participant{Teach: []string{"Python"}, Learn: []string{"React"}}
	twoMatches := Participant{Teach: []string{"Python", "Go"}, Learn: []string{"React", "CSS"}}

	lo := Score(base, oneMatch)
	hi := Score(base, twoMatches)

	if hi.Score < lo.Score {
		t.Fatalf("expected score to grow with mutual count: %v < %v", hi.Score, lo.Score)
	}
}

func TestScore_DoesNotMutateInputs(t *testing.T) {
	teach := []string{"  React ", "CSS"}
	learn := []string{"python"}
	a := Participant{Teach: teach, Learn: learn}
	b := Participant{Teach: []string{"Python"}, Learn: []string{"react"}}

	_ = Score(a, b)

	if teach[0] != "  React " || teach[1] != "CSS" || learn[0] != "python" {
		t.Fatalf("inputs were mutated: %v %v", teach, learn)
	}
}
