package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"skillswap/internal/database"
	"skillswap/internal/domain/skill"
)

// ProfilesSeeder inserts a small pool of demo users whose teach/learn lists
// overlap, so a fresh install has something to match against. Fixed ids keep
// the seed idempotent.
type ProfilesSeeder struct{}

func (ProfilesSeeder) Name() string { return "profiles" }

type demoProfile struct {
	ID    string
	Name  string
	Bio   string
	Teach []skill.Skill
	Learn []skill.Skill
}

func (ProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	items := []demoProfile{
		{
			ID:   "5d2f0a51-8f63-4c6e-9d2a-0c2b7a3f1e01",
			Name: "Alice Demo",
			Bio:  "Frontend tinkerer looking to go deeper on the backend.",
			Teach: []skill.Skill{
				{Name: "React", Category: "Frontend", Proficiency: skill.ProficiencyAdvanced},
				{Name: "CSS", Category: "Frontend", Proficiency: skill.ProficiencyExpert},
			},
			Learn: []skill.Skill{
				{Name: "Python", Category: "Programming", Proficiency: skill.ProficiencyBeginner},
				{Name: "PostgreSQL", Category: "Database", Proficiency: skill.ProficiencyBeginner},
			},
		},
		{
			ID:   "5d2f0a51-8f63-4c6e-9d2a-0c2b7a3f1e02",
			Name: "Bob Demo",
			Bio:  "Data person who has never centered a div.",
			Teach: []skill.Skill{
				{Name: "Python", Category: "Programming", Proficiency: skill.ProficiencyExpert},
				{Name: "PostgreSQL", Category: "Database", Proficiency: skill.ProficiencyAdvanced},
			},
			Learn: []skill.Skill{
				{Name: "React", Category: "Frontend", Proficiency: skill.ProficiencyBeginner},
			},
		},
		{
			ID:   "5d2f0a51-8f63-4c6e-9d2a-0c2b7a3f1e03",
			Name: "Carol Demo",
			Bio:  "Ops by day, pixels by night.",
			Teach: []skill.Skill{
				{Name: "Docker", Category: "DevOps", Proficiency: skill.ProficiencyAdvanced},
				{Name: "Kubernetes", Category: "DevOps", Proficiency: skill.ProficiencyIntermediate},
			},
			Learn: []skill.Skill{
				{Name: "Figma", Category: "Design", Proficiency: skill.ProficiencyBeginner},
				{Name: "CSS", Category: "Frontend", Proficiency: skill.ProficiencyBeginner},
			},
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range items {
		teach, err := json.Marshal(it.Teach)
		if err != nil {
			return err
		}
		learn, err := json.Marshal(it.Learn)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO profiles (user_id, name, bio, teach_skills, learn_skills)
			 VALUES ($1,$2,$3,$4,$5)
			 ON CONFLICT (user_id) DO NOTHING`,
			it.ID, it.Name, it.Bio, teach, learn,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
