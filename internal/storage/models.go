package storage

import "time"

type Habit struct {
	ID            int64
	Name          string
	Category      string
	Frequency     string
	Difficulty    string
	XPValue       int
	CurrentStreak int
	IsActive      bool
	CreatedAt     time.Time
}

// CompletionLog is one attempt at a habit. Completed=false records a miss
// or an explicit skip; Mood and XPEarned are captured at write time and are
// immutable afterwards.
type CompletionLog struct {
	ID          int64
	HabitID     int64
	CompletedAt time.Time
	Completed   bool
	Mood        *int
	XPEarned    *int
}

type Profile struct {
	Key            string
	Level          int
	CurrentXP      int
	XPForNextLevel int
	LongestStreak  int
}

// Achievement is the mutable runtime state of a built-in achievement
// definition, keyed by the definition code.
type Achievement struct {
	Code       string
	Progress   float64
	UnlockedAt *time.Time
}
