package engine

import (
	"math"
	"testing"

	"momentum/internal/storage"
)

func logFor(habitID int64, daysAgo, hour int, completed bool) storage.CompletionLog {
	l := logAt(daysAgo, hour, completed)
	l.HabitID = habitID
	return l
}

func statusFor(kind RequirementKind, target, xpReward int) AchievementStatus {
	return AchievementStatus{Def: AchievementDef{
		Code:        "test_" + string(kind),
		Name:        "Test",
		XPReward:    xpReward,
		Requirement: Requirement{Kind: kind, Target: target},
	}}
}

func TestEvaluateAllUnlockExactness(t *testing.T) {
	statuses := []AchievementStatus{statusFor(RequireStreakDays, 7, 50)}
	profile := storage.Profile{Level: 1}

	// One short of the target: fractional progress, no unlock, no XP.
	res := EvaluateAll(statuses, profile, []storage.Habit{{CurrentStreak: 6}}, nil, streakNow)
	if got, want := res.Achievements[0].Progress, 6.0/7.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("progress=%v, want %v", got, want)
	}
	if res.Achievements[0].Unlocked() || len(res.Unlocked) != 0 {
		t.Fatalf("unlocked at 6/7")
	}
	if res.Profile.CurrentXP != 0 {
		t.Fatalf("XP awarded before unlock: %d", res.Profile.CurrentXP)
	}

	// Exactly at the target: unlock, pin progress, award XP.
	res = EvaluateAll(statuses, profile, []storage.Habit{{CurrentStreak: 7}}, nil, streakNow)
	if len(res.Unlocked) != 1 || !res.Achievements[0].Unlocked() {
		t.Fatalf("expected unlock at 7/7")
	}
	if res.Achievements[0].Progress != 1.0 {
		t.Fatalf("progress=%v, want 1.0", res.Achievements[0].Progress)
	}
	if res.Profile.CurrentXP != 50 {
		t.Fatalf("XP=%d, want 50", res.Profile.CurrentXP)
	}
	if res.Achievements[0].UnlockedAt == nil || !res.Achievements[0].UnlockedAt.Equal(streakNow) {
		t.Fatalf("UnlockedAt=%v, want %v", res.Achievements[0].UnlockedAt, streakNow)
	}
}

func TestEvaluateAllIdempotent(t *testing.T) {
	statuses := []AchievementStatus{statusFor(RequireStreakDays, 7, 50)}

	first := EvaluateAll(statuses, storage.Profile{Level: 1}, []storage.Habit{{CurrentStreak: 7}}, nil, streakNow)
	if len(first.Unlocked) != 1 {
		t.Fatalf("setup: expected unlock")
	}

	// Re-run later with regressed input: the unlock and XP must not repeat.
	second := EvaluateAll(first.Achievements, first.Profile, []storage.Habit{{CurrentStreak: 0}}, nil, streakNow.AddDate(0, 0, 1))
	if len(second.Unlocked) != 0 {
		t.Fatalf("re-unlocked: %v", second.Unlocked)
	}
	if second.Profile.CurrentXP != first.Profile.CurrentXP {
		t.Fatalf("XP re-awarded: %d -> %d", first.Profile.CurrentXP, second.Profile.CurrentXP)
	}
	if !second.Achievements[0].UnlockedAt.Equal(*first.Achievements[0].UnlockedAt) {
		t.Fatalf("UnlockedAt changed")
	}
	if second.Achievements[0].Progress != 1.0 {
		t.Fatalf("unlocked progress regressed to %v", second.Achievements[0].Progress)
	}
}

func TestEvaluateAllProgressMonotonicWhileLocked(t *testing.T) {
	statuses := []AchievementStatus{statusFor(RequireStreakDays, 10, 0)}

	first := EvaluateAll(statuses, storage.Profile{}, []storage.Habit{{CurrentStreak: 5}}, nil, streakNow)
	second := EvaluateAll(first.Achievements, first.Profile, []storage.Habit{{CurrentStreak: 3}}, nil, streakNow)

	if got, want := second.Achievements[0].Progress, 0.5; got != want {
		t.Fatalf("progress regressed: %v, want %v", got, want)
	}
}

func TestRequirementProgressTotalOnEmptyInput(t *testing.T) {
	kinds := []RequirementKind{
		RequireStreakDays, RequireTotalCompletions, RequireReachLevel,
		RequirePerfectWeek, RequireHabitVariety, RequireEarlyBird,
		RequireNightOwl, RequireWeekendWarrior,
	}
	for _, kind := range kinds {
		got := RequirementProgress(Requirement{Kind: kind, Target: 5}, storage.Profile{}, nil, nil, streakNow)
		if got != 0 {
			t.Fatalf("%s on empty input: progress=%v, want 0", kind, got)
		}
	}

	// Zero target never divides by zero.
	if got := RequirementProgress(Requirement{Kind: RequireStreakDays, Target: 0}, storage.Profile{}, nil, nil, streakNow); got != 0 {
		t.Fatalf("zero target: progress=%v, want 0", got)
	}
}

func TestRequirementProgressPerfectWeek(t *testing.T) {
	habits := []storage.Habit{{ID: 1, IsActive: true}, {ID: 2, IsActive: true}}
	var logs []storage.CompletionLog
	for day := 0; day < 3; day++ {
		logs = append(logs, logFor(1, day, 9, true), logFor(2, day, 19, true))
	}
	// Day 3 only habit 1 completed, breaking the run.
	logs = append(logs, logFor(1, 3, 9, true))

	got := RequirementProgress(Requirement{Kind: RequirePerfectWeek, Target: 7}, storage.Profile{}, habits, logs, streakNow)
	if want := 3.0 / 7.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("perfect week progress=%v, want %v", got, want)
	}
}

func TestRequirementProgressEarlyBirdAndNightOwl(t *testing.T) {
	logs := []storage.CompletionLog{
		logFor(1, 0, 7, true),  // early
		logFor(1, 2, 8, true),  // early
		logFor(1, 1, 9, true),  // 9:00 is not early
		logFor(1, 0, 22, true), // late
	}

	got := RequirementProgress(Requirement{Kind: RequireEarlyBird, Target: 5}, storage.Profile{}, nil, logs, streakNow)
	if want := 2.0 / 5.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("early bird progress=%v, want %v", got, want)
	}

	got = RequirementProgress(Requirement{Kind: RequireNightOwl, Target: 5}, storage.Profile{}, nil, logs, streakNow)
	if want := 1.0 / 5.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("night owl progress=%v, want %v", got, want)
	}
}

func TestRequirementProgressWeekendWarrior(t *testing.T) {
	// streakNow is Monday 2024-06-10: offsets 1-2 are the nearest weekend,
	// offsets 8-9 the one before.
	logs := []storage.CompletionLog{
		logFor(1, 1, 10, true), // Sunday, week 0
		logFor(1, 8, 10, true), // Sunday, week 1
		logFor(1, 3, 10, true), // Friday, does not count
	}

	got := RequirementProgress(Requirement{Kind: RequireWeekendWarrior, Target: 4}, storage.Profile{}, nil, logs, streakNow)
	if want := 2.0 / 4.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("weekend warrior progress=%v, want %v", got, want)
	}
}

func TestRequirementProgressHabitVariety(t *testing.T) {
	logs := []storage.CompletionLog{
		logFor(1, 0, 9, true),
		logFor(2, 1, 9, true),
		logFor(3, 6, 9, true),
		logFor(4, 10, 9, true), // outside the 7-day window
		logFor(5, 2, 9, false), // miss, does not count
	}

	got := RequirementProgress(Requirement{Kind: RequireHabitVariety, Target: 5}, storage.Profile{}, nil, logs, streakNow)
	if want := 3.0 / 5.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("variety progress=%v, want %v", got, want)
	}
}

func TestBuiltinAchievementsWellFormed(t *testing.T) {
	defs := BuiltinAchievements()
	if len(defs) == 0 {
		t.Fatalf("no built-in achievements")
	}

	seen := map[string]bool{}
	for _, d := range defs {
		if d.Code == "" || d.Name == "" {
			t.Fatalf("achievement with empty code or name: %+v", d)
		}
		if seen[d.Code] {
			t.Fatalf("duplicate code %q", d.Code)
		}
		seen[d.Code] = true
		if d.Requirement.Target < 1 {
			t.Fatalf("%s: target %d < 1", d.Code, d.Requirement.Target)
		}
		if d.XPReward < 0 {
			t.Fatalf("%s: negative XP reward", d.Code)
		}
	}
}
