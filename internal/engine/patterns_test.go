package engine

import (
	"math"
	"testing"
	"time"

	"momentum/internal/storage"
)

// completionsOn builds one completion per day for the inclusive range of
// days-ago offsets.
func completionsOn(fromDaysAgo, toDaysAgo int) []storage.CompletionLog {
	var logs []storage.CompletionLog
	for d := fromDaysAgo; d <= toDaysAgo; d++ {
		logs = append(logs, logAt(d, 9, true))
	}
	return logs
}

func TestAnalyzePatternsEmpty(t *testing.T) {
	p := AnalyzePatterns(dailyHabit(), nil, streakNow)
	if p.Consistency != 0 || p.Momentum != 0 || p.Volatility != 0 {
		t.Fatalf("empty input: %+v, want zeros", p)
	}
}

func TestAnalyzePatternsConsistency(t *testing.T) {
	// 15 completed days out of the trailing 30.
	p := AnalyzePatterns(dailyHabit(), completionsOn(0, 14), streakNow)
	if want := 15.0 / 30.0; math.Abs(p.Consistency-want) > 1e-9 {
		t.Fatalf("consistency=%v, want %v", p.Consistency, want)
	}
}

func TestAnalyzePatternsMomentum(t *testing.T) {
	// A full week of completions after an empty one: maximum momentum.
	p := AnalyzePatterns(dailyHabit(), completionsOn(0, 6), streakNow)
	if math.Abs(p.Momentum-1.0) > 1e-9 {
		t.Fatalf("momentum=%v, want 1.0", p.Momentum)
	}

	// The mirror image: a week of silence after a full week.
	p = AnalyzePatterns(dailyHabit(), completionsOn(7, 13), streakNow)
	if math.Abs(p.Momentum - -1.0) > 1e-9 {
		t.Fatalf("momentum=%v, want -1.0", p.Momentum)
	}
}

func TestAnalyzePatternsModalPreferences(t *testing.T) {
	logs := []storage.CompletionLog{
		logAt(0, 8, true),
		logAt(1, 8, true),
		logAt(2, 8, true),
		logAt(3, 20, true),
	}
	p := AnalyzePatterns(dailyHabit(), logs, streakNow)
	if p.TimePreference != 8 {
		t.Fatalf("TimePreference=%d, want 8", p.TimePreference)
	}
}

func TestAnalyzeTimeFactorsEmpty(t *testing.T) {
	f := AnalyzeTimeFactors(dailyHabit(), nil, streakNow)
	if f.OptimalStartHour != 9 || f.OptimalEndHour != 10 {
		t.Fatalf("default window=[%d,%d), want [9,10)", f.OptimalStartHour, f.OptimalEndHour)
	}
	if f.TimeSinceLast != 0 {
		t.Fatalf("TimeSinceLast=%v, want 0", f.TimeSinceLast)
	}
}

func TestAnalyzeTimeFactorsRates(t *testing.T) {
	logs := []storage.CompletionLog{
		logAt(0, 8, true),
		logAt(1, 8, true),
		logAt(2, 8, true),
		logAt(1, 20, true),
		logAt(2, 20, false),
	}
	now := time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)

	f := AnalyzeTimeFactors(dailyHabit(), logs, now)
	if f.OptimalStartHour != 8 {
		t.Fatalf("OptimalStartHour=%d, want 8", f.OptimalStartHour)
	}
	if f.CurrentHourRate != 1.0 {
		t.Fatalf("CurrentHourRate=%v, want 1.0", f.CurrentHourRate)
	}
	if f.TimeSinceLast <= 0 {
		t.Fatalf("TimeSinceLast=%v, want > 0", f.TimeSinceLast)
	}
}

func TestAnalyzeStreakMomentum(t *testing.T) {
	m := AnalyzeStreakMomentum(dailyHabit(), completionsOn(0, 6), streakNow)
	if math.Abs(m.WeeklyMomentum-1.0) > 1e-9 {
		t.Fatalf("WeeklyMomentum=%v, want 1.0", m.WeeklyMomentum)
	}
	if m.LongestRecentStreak != 7 {
		t.Fatalf("LongestRecentStreak=%d, want 7", m.LongestRecentStreak)
	}
	if m.Acceleration <= 0 {
		t.Fatalf("Acceleration=%v, want > 0", m.Acceleration)
	}
}

func TestStddev(t *testing.T) {
	if got := stddev(nil); got != 0 {
		t.Fatalf("stddev(nil)=%v, want 0", got)
	}
	if got := stddev([]float64{0.5, 0.5, 0.5, 0.5}); got != 0 {
		t.Fatalf("stddev(constant)=%v, want 0", got)
	}
	if got := stddev([]float64{0, 1}); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("stddev([0,1])=%v, want 0.5", got)
	}
}
