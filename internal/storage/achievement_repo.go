package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type AchievementRepo struct {
	db *sql.DB
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

func (r *AchievementRepo) Get(ctx context.Context, code string) (*Achievement, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT code, progress, unlocked_at
		FROM achievements
		WHERE code = ?
	`, code)
	a, err := scanAchievement(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("achievement get: %w", err)
	}
	return a, nil
}

func (r *AchievementRepo) ListAll(ctx context.Context) ([]Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT code, progress, unlocked_at
		FROM achievements
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

func (r *AchievementRepo) Upsert(ctx context.Context, a Achievement) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO achievements (code, progress, unlocked_at)
		VALUES (?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET progress = excluded.progress, unlocked_at = excluded.unlocked_at
	`, a.Code, a.Progress, a.UnlockedAt)
	if err != nil {
		return fmt.Errorf("achievement upsert: %w", err)
	}
	return nil
}

func scanAchievement(row rowScanner) (*Achievement, error) {
	var a Achievement
	var unlocked sql.NullTime
	if err := row.Scan(&a.Code, &a.Progress, &unlocked); err != nil {
		return nil, err
	}
	if unlocked.Valid {
		t := unlocked.Time
		a.UnlockedAt = &t
	}
	return &a, nil
}
