package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"momentum/internal/storage"
)

// defaultOptimalHour is the fallback scheduling slot when a habit has no
// history yet.
const defaultOptimalHour = 9

// Probability weights. Consistency dominates; momentum and the
// current-hour success rate adjust it. horizonDecay dampens longer
// forecasts per extra day.
const (
	weightConsistency = 0.5
	weightMomentum    = 0.3
	weightHourRate    = 0.2
	horizonDecay      = 0.98
)

type StreakPrediction struct {
	Probability       float64 // [0,100]
	RecommendedAction string
}

type SchedulingRecommendation struct {
	OptimalHour      int
	SuccessRate      float64
	Reasoning        string
	AlternativeHours []int
}

// PredictStreakSuccess estimates the chance of keeping the habit's streak
// alive for the given number of days. Deterministic weighted blend of the
// pattern-analysis outputs, not a trained model. No completions yet means
// probability zero.
func PredictStreakSuccess(habit storage.Habit, logs []storage.CompletionLog, days int, now time.Time) StreakPrediction {
	if days < 1 {
		days = 1
	}
	if countCompleted(logs) == 0 {
		return StreakPrediction{Probability: 0, RecommendedAction: actionForProbability(0)}
	}

	patterns := AnalyzePatterns(habit, logs, now)
	factors := AnalyzeTimeFactors(habit, logs, now)

	momentumScore := clamp01(0.5 + patterns.Momentum/2)
	score := weightConsistency*patterns.Consistency +
		weightMomentum*momentumScore +
		weightHourRate*factors.CurrentHourRate

	probability := 100 * score * math.Pow(horizonDecay, float64(days-1))
	if probability < 0 {
		probability = 0
	}
	if probability > 100 {
		probability = 100
	}

	return StreakPrediction{
		Probability:       probability,
		RecommendedAction: actionForProbability(probability),
	}
}

func actionForProbability(p float64) string {
	switch {
	case p >= 80:
		return "Keep the routine exactly as it is."
	case p >= 60:
		return "Solid trajectory. Protect your usual time slot."
	case p >= 40:
		return "At risk. Schedule it at your best hour and set a reminder."
	case p >= 20:
		return "Streak is fragile. Shrink the habit to its smallest version."
	default:
		return "Restart small: commit to one completion today."
	}
}

// OptimalScheduling picks the hour-of-day bucket with the highest historical
// success rate (ties broken by the earliest hour) and offers the two
// runners-up as alternatives.
func OptimalScheduling(habit storage.Habit, logs []storage.CompletionLog, now time.Time) SchedulingRecommendation {
	if len(logs) == 0 {
		return SchedulingRecommendation{
			OptimalHour:      defaultOptimalHour,
			SuccessRate:      0,
			Reasoning:        fmt.Sprintf("No history for %q yet; starting with a morning slot.", habit.Name),
			AlternativeHours: []int{12, 18},
		}
	}

	hours := hourRates(logs)
	best := bestHour(hours)

	ranked := make([]int, 0, 24)
	for h := 0; h < 24; h++ {
		if h != best && hours[h].total > 0 {
			ranked = append(ranked, h)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := hours[ranked[i]].rate(), hours[ranked[j]].rate()
		if ri != rj {
			return ri > rj
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > 2 {
		ranked = ranked[:2]
	}

	rate := hours[best].rate()
	return SchedulingRecommendation{
		OptimalHour: best,
		SuccessRate: rate,
		Reasoning: fmt.Sprintf("You complete %q most reliably around %02d:00 (%.0f%% of attempts).",
			habit.Name, best, rate*100),
		AlternativeHours: ranked,
	}
}
