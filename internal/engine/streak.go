package engine

import (
	"sort"
	"time"

	"momentum/internal/storage"
)

// dateOf strips a timestamp to its wall-clock date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from b to a (positive when a
// is later).
func daysBetween(a, b time.Time) int {
	return int(dateOf(a).Sub(dateOf(b)).Hours() / 24)
}

// ComputeStreak counts consecutive frequency units ending at the most recent
// completed log. Logs should include the completion being recorded; with no
// completed logs at all the fresh completion still counts as a streak of 1.
// Daily habits need adjacent logs exactly 1 day apart, weekly exactly 7;
// custom keeps daily semantics. Same-day duplicates neither extend nor break
// the run; the first larger gap ends it.
func ComputeStreak(habit storage.Habit, logs []storage.CompletionLog) int {
	completed := make([]storage.CompletionLog, 0, len(logs))
	for _, l := range logs {
		if l.Completed {
			completed = append(completed, l)
		}
	}
	if len(completed) == 0 {
		return 1
	}

	sort.Slice(completed, func(i, j int) bool {
		return completed[i].CompletedAt.After(completed[j].CompletedAt)
	})

	unit := Frequency(habit.Frequency).UnitDays()
	streak := 1
	for i := 0; i+1 < len(completed); i++ {
		diff := daysBetween(completed[i].CompletedAt, completed[i+1].CompletedAt)
		if diff == 0 {
			continue
		}
		if diff != unit {
			break
		}
		streak++
	}
	return streak
}

// IsDueToday reports whether the habit still needs a completion in the
// current calendar unit: the day for daily and custom habits, the ISO week
// for weekly ones.
func IsDueToday(habit storage.Habit, logs []storage.CompletionLog, now time.Time) bool {
	var last *time.Time
	for i := range logs {
		if !logs[i].Completed {
			continue
		}
		if last == nil || logs[i].CompletedAt.After(*last) {
			last = &logs[i].CompletedAt
		}
	}
	if last == nil {
		return true
	}

	if Frequency(habit.Frequency) == FrequencyWeekly {
		ly, lw := last.ISOWeek()
		ny, nw := now.ISOWeek()
		return ly != ny || lw != nw
	}
	return !dateOf(*last).Equal(dateOf(now))
}

// RatchetLongestStreak raises the profile's longest-streak high-water mark.
// It never lowers it.
func RatchetLongestStreak(profile storage.Profile, streak int) (storage.Profile, bool) {
	if streak > profile.LongestStreak {
		profile.LongestStreak = streak
		return profile, true
	}
	return profile, false
}
