package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

func TestGetProfile_NotFound(t *testing.T) {
	uc := NewProfileUsecase(mockProfileRepo{byID: map[uuid.UUID]profile.Profile{}}, nil, nil)
	if _, err := uc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfile_RejectsNamelessSkill(t *testing.T) {
	uc := NewProfileUsecase(mockProfileRepo{}, nil, nil)
	_, err := uc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{
		TeachSkills: []skill.Skill{{Name: "   "}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateProfile_RejectsUnknownEnum(t *testing.T) {
	uc := NewProfileUsecase(mockProfileRepo{}, nil, nil)
	_, err := uc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{
		LearnSkills: []skill.Skill{{Name: "React", Proficiency: "wizard"}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateProfile_KeepsDuplicatesAndOrder(t *testing.T) {
	uc := NewProfileUsecase(mockProfileRepo{}, nil, nil)
	in := UpdateProfileInput{
		Name: "Alice",
		TeachSkills: []skill.Skill{
			{Name: "React", Category: "Frontend", Proficiency: skill.ProficiencyAdvanced},
			{Name: "React", Category: "Frontend", Proficiency: skill.ProficiencyAdvanced},
			{Name: "CSS"},
		},
	}

	p, err := uc.UpdateProfile(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.TeachSkills) != 3 {
		t.Fatalf("expected duplicates preserved, got %d entries", len(p.TeachSkills))
	}
	if p.TeachSkills[0].Name != "React" || p.TeachSkills[2].Name != "CSS" {
		t.Fatalf("order changed: %+v", p.TeachSkills)
	}
	// Missing category/proficiency default rather than fail.
	if p.TeachSkills[2].Category != "Other" || p.TeachSkills[2].Proficiency != skill.ProficiencyBeginner {
		t.Fatalf("expected defaults applied, got %+v", p.TeachSkills[2])
	}
}
