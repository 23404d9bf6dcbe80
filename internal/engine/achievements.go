package engine

import (
	"time"

	"momentum/internal/storage"
)

type RequirementKind string

const (
	RequireStreakDays       RequirementKind = "streak_days"
	RequireTotalCompletions RequirementKind = "total_completions"
	RequireReachLevel       RequirementKind = "reach_level"
	RequirePerfectWeek      RequirementKind = "perfect_week"
	RequireHabitVariety     RequirementKind = "habit_variety"
	RequireEarlyBird        RequirementKind = "early_bird"
	RequireNightOwl         RequirementKind = "night_owl"
	RequireWeekendWarrior   RequirementKind = "weekend_warrior"
)

// Requirement is the condition an achievement unlocks on: one kind plus the
// threshold it evaluates against.
type Requirement struct {
	Kind   RequirementKind
	Target int
}

type AchievementCategory string

const (
	AchievementStreak      AchievementCategory = "streak"
	AchievementCompletion  AchievementCategory = "completion"
	AchievementLevel       AchievementCategory = "level"
	AchievementConsistency AchievementCategory = "consistency"
	AchievementSpecial     AchievementCategory = "special"
)

// AchievementDef is an immutable built-in achievement definition.
type AchievementDef struct {
	Code        string
	Name        string
	Description string
	Icon        string
	Category    AchievementCategory
	XPReward    int
	Hidden      bool
	Requirement Requirement
}

// AchievementStatus pairs a definition with its mutable runtime state.
type AchievementStatus struct {
	Def        AchievementDef
	Progress   float64
	UnlockedAt *time.Time
}

func (a AchievementStatus) Unlocked() bool {
	return a.UnlockedAt != nil
}

type EvaluationResult struct {
	Achievements []AchievementStatus
	Profile      storage.Profile
	Unlocked     []AchievementDef
	LeveledUp    bool
	NewLevel     int
}

const (
	earlyBirdHour = 9
	nightOwlHour  = 21

	perfectWeekDays     = 7
	weekendWarriorWeeks = 4
	varietyWindowDays   = 7
)

// EvaluateAll recomputes progress for every locked achievement and unlocks
// the ones that reached 1.0, awarding their XP to the profile. Unlocked
// achievements are skipped entirely, so re-running with stale or regressed
// input never moves progress backwards or re-awards XP.
func EvaluateAll(achievements []AchievementStatus, profile storage.Profile, habits []storage.Habit, logs []storage.CompletionLog, now time.Time) EvaluationResult {
	res := EvaluationResult{
		Achievements: make([]AchievementStatus, 0, len(achievements)),
		Profile:      profile,
		NewLevel:     profile.Level,
	}

	for _, a := range achievements {
		if a.Unlocked() {
			a.Progress = 1.0
			res.Achievements = append(res.Achievements, a)
			continue
		}

		p := RequirementProgress(a.Def.Requirement, res.Profile, habits, logs, now)
		if p < a.Progress {
			// Progress is monotonic while locked.
			p = a.Progress
		}
		a.Progress = p

		if p >= 1.0 {
			unlockedAt := now
			a.UnlockedAt = &unlockedAt
			a.Progress = 1.0

			var leveled bool
			var level int
			res.Profile, leveled, level = ApplyXP(res.Profile, a.Def.XPReward)
			if leveled {
				res.LeveledUp = true
			}
			res.NewLevel = level
			res.Unlocked = append(res.Unlocked, a.Def)
		}
		res.Achievements = append(res.Achievements, a)
	}

	return res
}

// RequirementProgress evaluates one requirement against the snapshot and
// returns progress in [0,1]. It is total: absent input yields 0, and every
// denominator is floored at 1.
func RequirementProgress(req Requirement, profile storage.Profile, habits []storage.Habit, logs []storage.CompletionLog, now time.Time) float64 {
	target := req.Target
	if target < 1 {
		target = 1
	}

	switch req.Kind {
	case RequireStreakDays:
		best := 0
		for _, h := range habits {
			if h.CurrentStreak > best {
				best = h.CurrentStreak
			}
		}
		return clamp01(float64(best) / float64(target))

	case RequireTotalCompletions:
		return clamp01(float64(countCompleted(logs)) / float64(target))

	case RequireReachLevel:
		return clamp01(float64(profile.Level) / float64(target))

	case RequireHabitVariety:
		return clamp01(float64(habitVariety(logs, now)) / float64(target))

	case RequirePerfectWeek:
		return clamp01(float64(perfectWeekRun(habits, logs, now)) / float64(target))

	case RequireEarlyBird:
		days := qualifyingDays(logs, now, func(hour int) bool { return hour < earlyBirdHour })
		return clamp01(float64(days) / float64(target))

	case RequireNightOwl:
		days := qualifyingDays(logs, now, func(hour int) bool { return hour >= nightOwlHour })
		return clamp01(float64(days) / float64(target))

	case RequireWeekendWarrior:
		return clamp01(float64(weekendWeeks(logs, now)) / float64(target))

	default:
		return 0
	}
}

func countCompleted(logs []storage.CompletionLog) int {
	n := 0
	for _, l := range logs {
		if l.Completed {
			n++
		}
	}
	return n
}

// habitVariety counts distinct habits with at least one completion in the
// trailing 7 days.
func habitVariety(logs []storage.CompletionLog, now time.Time) int {
	seen := map[int64]bool{}
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		off := daysBetween(now, l.CompletedAt)
		if off < 0 || off >= varietyWindowDays {
			continue
		}
		seen[l.HabitID] = true
	}
	return len(seen)
}

// perfectWeekRun returns the longest run of consecutive days in the trailing
// week on which the count of distinct habits completed reached the total
// habit count. Using the total count (rather than the habits active on that
// specific day) is a deliberate simplification carried over from the source
// behavior.
func perfectWeekRun(habits []storage.Habit, logs []storage.CompletionLog, now time.Time) int {
	if len(habits) == 0 {
		return 0
	}

	perDay := make([]map[int64]bool, perfectWeekDays)
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		off := daysBetween(now, l.CompletedAt)
		if off < 0 || off >= perfectWeekDays {
			continue
		}
		if perDay[off] == nil {
			perDay[off] = map[int64]bool{}
		}
		perDay[off][l.HabitID] = true
	}

	longest, run := 0, 0
	for off := perfectWeekDays - 1; off >= 0; off-- {
		if len(perDay[off]) >= len(habits) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// qualifyingDays counts days in the trailing week with at least one
// completion whose hour satisfies the predicate.
func qualifyingDays(logs []storage.CompletionLog, now time.Time, hourOK func(int) bool) int {
	days := map[int]bool{}
	for _, l := range logs {
		if !l.Completed || !hourOK(l.CompletedAt.Hour()) {
			continue
		}
		off := daysBetween(now, l.CompletedAt)
		if off < 0 || off >= perfectWeekDays {
			continue
		}
		days[off] = true
	}
	return len(days)
}

// weekendWeeks counts weeks in the trailing four with at least one Saturday
// or Sunday completion.
func weekendWeeks(logs []storage.CompletionLog, now time.Time) int {
	weeks := map[int]bool{}
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		wd := l.CompletedAt.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			continue
		}
		off := daysBetween(now, l.CompletedAt)
		if off < 0 || off >= weekendWarriorWeeks*7 {
			continue
		}
		weeks[off/7] = true
	}
	return len(weeks)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
