package engine

import (
	"testing"
	"time"

	"momentum/internal/storage"
)

func TestPredictStreakSuccessNoHistory(t *testing.T) {
	p := PredictStreakSuccess(dailyHabit(), nil, 7, streakNow)
	if p.Probability != 0 {
		t.Fatalf("probability=%v, want 0", p.Probability)
	}
	if p.RecommendedAction == "" {
		t.Fatalf("empty action")
	}
}

func TestPredictStreakSuccessStrongHistory(t *testing.T) {
	// 30 straight days at 09:00, asked at 09:00: consistency 1.0, flat
	// momentum, perfect hour rate.
	logs := completionsOn(0, 29)
	now := time.Date(2024, 6, 10, 9, 15, 0, 0, time.UTC)

	p := PredictStreakSuccess(dailyHabit(), logs, 1, now)
	if p.Probability < 80 {
		t.Fatalf("probability=%v, want >= 80", p.Probability)
	}
	if p.RecommendedAction != "Keep the routine exactly as it is." {
		t.Fatalf("action=%q", p.RecommendedAction)
	}
}

func TestPredictStreakSuccessHorizonDamping(t *testing.T) {
	logs := completionsOn(0, 29)

	day1 := PredictStreakSuccess(dailyHabit(), logs, 1, streakNow)
	day7 := PredictStreakSuccess(dailyHabit(), logs, 7, streakNow)
	day30 := PredictStreakSuccess(dailyHabit(), logs, 30, streakNow)

	if !(day1.Probability > day7.Probability && day7.Probability > day30.Probability) {
		t.Fatalf("probability not decreasing with horizon: %v, %v, %v",
			day1.Probability, day7.Probability, day30.Probability)
	}
}

func TestPredictStreakSuccessBounds(t *testing.T) {
	logs := completionsOn(0, 29)
	for _, days := range []int{0, 1, 7, 365} {
		p := PredictStreakSuccess(dailyHabit(), logs, days, streakNow)
		if p.Probability < 0 || p.Probability > 100 {
			t.Fatalf("days=%d: probability %v outside [0,100]", days, p.Probability)
		}
	}
}

func TestActionForProbabilityBuckets(t *testing.T) {
	cases := []struct {
		p    float64
		want string
	}{
		{95, "Keep the routine exactly as it is."},
		{80, "Keep the routine exactly as it is."},
		{65, "Solid trajectory. Protect your usual time slot."},
		{45, "At risk. Schedule it at your best hour and set a reminder."},
		{25, "Streak is fragile. Shrink the habit to its smallest version."},
		{5, "Restart small: commit to one completion today."},
	}
	for _, tc := range cases {
		if got := actionForProbability(tc.p); got != tc.want {
			t.Fatalf("actionForProbability(%v)=%q, want %q", tc.p, got, tc.want)
		}
	}
}

func TestOptimalSchedulingNoHistory(t *testing.T) {
	s := OptimalScheduling(dailyHabit(), nil, streakNow)
	if s.OptimalHour != 9 {
		t.Fatalf("OptimalHour=%d, want 9", s.OptimalHour)
	}
	if len(s.AlternativeHours) != 2 || s.AlternativeHours[0] != 12 || s.AlternativeHours[1] != 18 {
		t.Fatalf("AlternativeHours=%v, want [12 18]", s.AlternativeHours)
	}
}

func TestOptimalSchedulingPicksBestHour(t *testing.T) {
	// 09:00 and 20:00 are tied at 100%; 06:00 trails at 50%.
	logs := []storage.CompletionLog{
		logAt(0, 9, true),
		logAt(1, 9, true),
		logAt(0, 20, true),
		logAt(1, 6, true),
		logAt(2, 6, false),
	}

	s := OptimalScheduling(dailyHabit(), logs, streakNow)
	if s.OptimalHour != 9 {
		t.Fatalf("OptimalHour=%d, want 9 (earliest of the tied best hours)", s.OptimalHour)
	}
	if s.SuccessRate != 1.0 {
		t.Fatalf("SuccessRate=%v, want 1.0", s.SuccessRate)
	}
	if len(s.AlternativeHours) != 2 || s.AlternativeHours[0] != 20 || s.AlternativeHours[1] != 6 {
		t.Fatalf("AlternativeHours=%v, want [20 6] (ranked by rate)", s.AlternativeHours)
	}
}
