package engine

import (
	"testing"
	"time"

	"momentum/internal/storage"
)

var streakNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) // a Monday

func logAt(daysAgo, hour int, completed bool) storage.CompletionLog {
	return storage.CompletionLog{
		HabitID:     1,
		CompletedAt: streakNow.AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour),
		Completed:   completed,
	}
}

func dailyHabit() storage.Habit {
	return storage.Habit{ID: 1, Name: "Test", Frequency: string(FrequencyDaily), IsActive: true}
}

func TestComputeStreakNoLogs(t *testing.T) {
	if got := ComputeStreak(dailyHabit(), nil); got != 1 {
		t.Fatalf("streak=%d, want 1", got)
	}
}

func TestComputeStreakResetOnGap(t *testing.T) {
	// Completions 0, 1 and 2 days ago, then a gap, then 4 days ago.
	logs := []storage.CompletionLog{
		logAt(0, 9, true),
		logAt(1, 9, true),
		logAt(2, 9, true),
		logAt(4, 9, true),
	}
	if got := ComputeStreak(dailyHabit(), logs); got != 3 {
		t.Fatalf("streak=%d, want 3 (gap breaks continuity)", got)
	}
}

func TestComputeStreakIgnoresMisses(t *testing.T) {
	logs := []storage.CompletionLog{
		logAt(0, 9, true),
		logAt(1, 9, false), // recorded miss
		logAt(2, 9, true),
	}
	if got := ComputeStreak(dailyHabit(), logs); got != 1 {
		t.Fatalf("streak=%d, want 1 (miss leaves a gap)", got)
	}
}

func TestComputeStreakSameDayDuplicate(t *testing.T) {
	logs := []storage.CompletionLog{
		logAt(0, 9, true),
		logAt(0, 20, true),
		logAt(1, 9, true),
	}
	if got := ComputeStreak(dailyHabit(), logs); got != 2 {
		t.Fatalf("streak=%d, want 2 (same-day duplicate neither extends nor breaks)", got)
	}
}

func TestComputeStreakWeekly(t *testing.T) {
	h := storage.Habit{ID: 1, Frequency: string(FrequencyWeekly), IsActive: true}

	logs := []storage.CompletionLog{logAt(0, 9, true), logAt(7, 9, true), logAt(14, 9, true)}
	if got := ComputeStreak(h, logs); got != 3 {
		t.Fatalf("weekly streak=%d, want 3", got)
	}

	logs = []storage.CompletionLog{logAt(0, 9, true), logAt(7, 9, true), logAt(15, 9, true)}
	if got := ComputeStreak(h, logs); got != 2 {
		t.Fatalf("weekly streak=%d, want 2 (8-day gap breaks)", got)
	}
}

func TestComputeStreakCustomUsesDailySemantics(t *testing.T) {
	h := storage.Habit{ID: 1, Frequency: string(FrequencyCustom), IsActive: true}
	logs := []storage.CompletionLog{logAt(0, 9, true), logAt(1, 9, true), logAt(3, 9, true)}
	if got := ComputeStreak(h, logs); got != 2 {
		t.Fatalf("custom streak=%d, want 2", got)
	}
}

func TestIsDueToday(t *testing.T) {
	h := dailyHabit()

	if !IsDueToday(h, nil, streakNow) {
		t.Fatalf("no logs: want due")
	}
	if IsDueToday(h, []storage.CompletionLog{logAt(0, 8, true)}, streakNow) {
		t.Fatalf("completed today: want not due")
	}
	if !IsDueToday(h, []storage.CompletionLog{logAt(1, 8, true)}, streakNow) {
		t.Fatalf("completed yesterday: want due")
	}
	if !IsDueToday(h, []storage.CompletionLog{logAt(0, 8, false)}, streakNow) {
		t.Fatalf("only a miss today: want due")
	}

	weekly := storage.Habit{ID: 1, Frequency: string(FrequencyWeekly)}
	// streakNow is a Monday, so 2 days ago lands in the previous ISO week.
	if IsDueToday(weekly, []storage.CompletionLog{logAt(0, 8, true)}, streakNow) {
		t.Fatalf("weekly completed this week: want not due")
	}
	if !IsDueToday(weekly, []storage.CompletionLog{logAt(2, 8, true)}, streakNow) {
		t.Fatalf("weekly completed last week: want due")
	}
}

func TestRatchetLongestStreak(t *testing.T) {
	p := storage.Profile{LongestStreak: 5}

	p2, raised := RatchetLongestStreak(p, 7)
	if !raised || p2.LongestStreak != 7 {
		t.Fatalf("ratchet up failed: %+v raised=%v", p2, raised)
	}

	p3, raised := RatchetLongestStreak(p2, 3)
	if raised || p3.LongestStreak != 7 {
		t.Fatalf("ratchet must never lower: %+v raised=%v", p3, raised)
	}
}
