package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"skillswap/internal/database"
	"skillswap/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.MutualSkills == nil {
		m.MutualSkills = []match.MutualSkill{}
	}

	snapshot, err := json.Marshal(m.MutualSkills)
	if err != nil {
		return match.Match{}, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO matches (id, user_a_id, user_b_id, score, mutual_skills, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.UserAID, m.UserBID, m.Score, snapshot, m.CreatedAt,
	)
	if err != nil {
		// The unique index on the normalized pair key is the authoritative
		// duplicate guard; the usecase pre-check only improves error messages.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return match.Match{}, match.ErrDuplicatePair
		}
		return match.Match{}, err
	}
	return m, nil
}

func (r *PostgresMatchRepository) ExistsForPair(ctx context.Context, userAID, userBID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM matches
			WHERE LEAST(user_a_id, user_b_id) = LEAST($1::uuid, $2::uuid)
			  AND GREATEST(user_a_id, user_b_id) = GREATEST($1::uuid, $2::uuid)
		)`,
		userAID, userBID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresMatchRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]match.WithUsers, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.id, m.user_a_id, m.user_b_id, m.score, m.mutual_skills, m.created_at,
			pa.name, pa.bio, pa.avatar_url,
			pb.name, pb.bio, pb.avatar_url
		 FROM matches m
		 JOIN profiles pa ON pa.user_id = m.user_a_id
		 JOIN profiles pb ON pb.user_id = m.user_b_id
		 WHERE m.user_a_id = $1 OR m.user_b_id = $1
		 ORDER BY m.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.WithUsers, 0)
	for rows.Next() {
		var mw match.WithUsers
		var snapshot []byte
		if err := rows.Scan(
			&mw.ID, &mw.UserAID, &mw.UserBID, &mw.Score, &snapshot, &mw.CreatedAt,
			&mw.UserA.Name, &mw.UserA.Bio, &mw.UserA.AvatarURL,
			&mw.UserB.Name, &mw.UserB.Bio, &mw.UserB.AvatarURL,
		); err != nil {
			return nil, err
		}

		mw.MutualSkills = make([]match.MutualSkill, 0)
		if len(snapshot) > 0 {
			if err := json.Unmarshal(snapshot, &mw.MutualSkills); err != nil {
				return nil, err
			}
		}

		mw.UserA.ID = mw.UserAID
		mw.UserB.ID = mw.UserBID
		out = append(out, mw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
