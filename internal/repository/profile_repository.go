package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"skillswap/internal/database"
	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `user_id, name, bio, avatar_url, teach_skills, learn_skills,
	favorite_ice_cream, spirit_animal, personality_type, daily_rhythm, personal_color,
	created_at, updated_at`

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) ExistsByID(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = $1)`, userID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresProfileRepository) ListCandidates(ctx context.Context, excludeID uuid.UUID) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id <> $1 ORDER BY user_id ASC`,
		excludeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	teach, err := marshalSkills(p.TeachSkills)
	if err != nil {
		return profile.Profile{}, err
	}
	learn, err := marshalSkills(p.LearnSkills)
	if err != nil {
		return profile.Profile{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (user_id, name, bio, avatar_url, teach_skills, learn_skills,
			favorite_ice_cream, spirit_animal, personality_type, daily_rhythm, personal_color, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			teach_skills = EXCLUDED.teach_skills,
			learn_skills = EXCLUDED.learn_skills,
			favorite_ice_cream = EXCLUDED.favorite_ice_cream,
			spirit_animal = EXCLUDED.spirit_animal,
			personality_type = EXCLUDED.personality_type,
			daily_rhythm = EXCLUDED.daily_rhythm,
			personal_color = EXCLUDED.personal_color,
			updated_at = EXCLUDED.updated_at
		 RETURNING `+profileColumns,
		p.UserID, p.Name, p.Bio, p.AvatarURL, teach, learn,
		p.FavoriteIceCream, p.SpiritAnimal, p.PersonalityType, p.DailyRhythm, p.PersonalColor,
		time.Now().UTC(),
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	var teach, learn []byte
	err := row.Scan(
		&p.UserID, &p.Name, &p.Bio, &p.AvatarURL, &teach, &learn,
		&p.FavoriteIceCream, &p.SpiritAnimal, &p.PersonalityType, &p.DailyRhythm, &p.PersonalColor,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}

	if p.TeachSkills, err = unmarshalSkills(teach); err != nil {
		return profile.Profile{}, err
	}
	if p.LearnSkills, err = unmarshalSkills(learn); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func marshalSkills(skills []skill.Skill) ([]byte, error) {
	if skills == nil {
		skills = []skill.Skill{}
	}
	return json.Marshal(skills)
}

func unmarshalSkills(raw []byte) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0)
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
