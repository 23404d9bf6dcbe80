package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type LogRepo struct {
	db *sql.DB
}

func NewLogRepo(db *sql.DB) *LogRepo {
	return &LogRepo{db: db}
}

func (r *LogRepo) Insert(ctx context.Context, l CompletionLog) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO completion_logs (habit_id, completed_at, completed, mood, xp_earned)
		VALUES (?, ?, ?, ?, ?)
	`, l.HabitID, l.CompletedAt, boolToInt(l.Completed), l.Mood, l.XPEarned)
	if err != nil {
		return 0, fmt.Errorf("log insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("log last insert id: %w", err)
	}
	return id, nil
}

func (r *LogRepo) ListByHabit(ctx context.Context, habitID int64) ([]CompletionLog, error) {
	return r.list(ctx, `
		SELECT id, habit_id, completed_at, completed, mood, xp_earned
		FROM completion_logs
		WHERE habit_id = ?
		ORDER BY completed_at DESC
	`, habitID)
}

func (r *LogRepo) ListAll(ctx context.Context) ([]CompletionLog, error) {
	return r.list(ctx, `
		SELECT id, habit_id, completed_at, completed, mood, xp_earned
		FROM completion_logs
		ORDER BY completed_at DESC
	`)
}

func (r *LogRepo) ListSince(ctx context.Context, since time.Time) ([]CompletionLog, error) {
	return r.list(ctx, `
		SELECT id, habit_id, completed_at, completed, mood, xp_earned
		FROM completion_logs
		WHERE completed_at >= ?
		ORDER BY completed_at DESC
	`, since)
}

func (r *LogRepo) Last(ctx context.Context, habitID int64) (*CompletionLog, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, habit_id, completed_at, completed, mood, xp_earned
		FROM completion_logs
		WHERE habit_id = ?
		ORDER BY completed_at DESC
		LIMIT 1
	`, habitID)
	l, err := scanLog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("log last: %w", err)
	}
	return l, nil
}

func (r *LogRepo) list(ctx context.Context, query string, args ...any) ([]CompletionLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("log list: %w", err)
	}
	defer rows.Close()

	var out []CompletionLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("log scan: %w", err)
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("log rows: %w", err)
	}
	return out, nil
}

func scanLog(row rowScanner) (*CompletionLog, error) {
	var l CompletionLog
	var completed int
	var mood sql.NullInt64
	var xp sql.NullInt64
	if err := row.Scan(&l.ID, &l.HabitID, &l.CompletedAt, &completed, &mood, &xp); err != nil {
		return nil, err
	}
	l.Completed = completed != 0
	if mood.Valid {
		v := int(mood.Int64)
		l.Mood = &v
	}
	if xp.Valid {
		v := int(xp.Int64)
		l.XPEarned = &v
	}
	return &l, nil
}
