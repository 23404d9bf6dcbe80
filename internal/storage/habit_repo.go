package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type HabitRepo struct {
	db *sql.DB
}

func NewHabitRepo(db *sql.DB) *HabitRepo {
	return &HabitRepo{db: db}
}

func (r *HabitRepo) Insert(ctx context.Context, h Habit) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (name, category, frequency, difficulty, xp_value, current_streak, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, h.Name, h.Category, h.Frequency, h.Difficulty, h.XPValue, h.CurrentStreak, boolToInt(h.IsActive))
	if err != nil {
		return 0, fmt.Errorf("habit insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("habit last insert id: %w", err)
	}
	return id, nil
}

func (r *HabitRepo) Get(ctx context.Context, id int64) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, frequency, difficulty, xp_value, current_streak, is_active, created_at
		FROM habits
		WHERE id = ?
	`, id)
	h, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("habit get: %w", err)
	}
	return h, nil
}

func (r *HabitRepo) ListAll(ctx context.Context) ([]Habit, error) {
	return r.list(ctx, `
		SELECT id, name, category, frequency, difficulty, xp_value, current_streak, is_active, created_at
		FROM habits
		ORDER BY id
	`)
}

func (r *HabitRepo) ListActive(ctx context.Context) ([]Habit, error) {
	return r.list(ctx, `
		SELECT id, name, category, frequency, difficulty, xp_value, current_streak, is_active, created_at
		FROM habits
		WHERE is_active = 1
		ORDER BY id
	`)
}

func (r *HabitRepo) UpdateStreak(ctx context.Context, id int64, streak int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET current_streak = ? WHERE id = ?`, streak, id)
	if err != nil {
		return fmt.Errorf("habit update streak: %w", err)
	}
	return nil
}

func (r *HabitRepo) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET is_active = ? WHERE id = ?`, boolToInt(active), id)
	if err != nil {
		return fmt.Errorf("habit set active: %w", err)
	}
	return nil
}

func (r *HabitRepo) list(ctx context.Context, query string) ([]Habit, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("habit scan: %w", err)
		}
		out = append(out, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit rows: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (*Habit, error) {
	var h Habit
	var active int
	if err := row.Scan(&h.ID, &h.Name, &h.Category, &h.Frequency, &h.Difficulty, &h.XPValue, &h.CurrentStreak, &active, &h.CreatedAt); err != nil {
		return nil, err
	}
	h.IsActive = active != 0
	return &h, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
