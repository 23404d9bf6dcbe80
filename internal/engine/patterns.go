package engine

import (
	"math"
	"time"

	"momentum/internal/storage"
)

const (
	consistencyWindowDays = 30
	momentumWindowDays    = 7
	volatilityWeeks       = 4
)

// HabitPatterns is a read-only behavioral summary of one habit's history.
type HabitPatterns struct {
	Consistency       float64 // completion rate over the trailing 30 days
	Momentum          float64 // rate(last 7d) minus rate(prior 7d), in [-1,1]
	Volatility        float64 // stddev of the trailing weekly rates
	WeekdayPreference time.Weekday
	TimePreference    int // hour of day
}

// TimeFactors conditions success on the caller's current clock position.
type TimeFactors struct {
	CurrentHourRate    float64
	CurrentWeekdayRate float64
	TimeSinceLast      time.Duration // zero when there is no completion yet
	OptimalStartHour   int
	OptimalEndHour     int
}

type StreakMomentum struct {
	WeeklyMomentum      float64
	LongestRecentStreak int
	Acceleration        float64
}

// AnalyzePatterns derives consistency, momentum, volatility and the modal
// weekday/hour from the habit's log history. Pure and total: empty input
// yields zeros.
func AnalyzePatterns(habit storage.Habit, logs []storage.CompletionLog, now time.Time) HabitPatterns {
	weekRates := make([]float64, volatilityWeeks)
	for w := 0; w < volatilityWeeks; w++ {
		weekRates[w] = completionRate(habit, logs, now, w*7, (w+1)*7)
	}

	return HabitPatterns{
		Consistency:       completionRate(habit, logs, now, 0, consistencyWindowDays),
		Momentum:          weekRates[0] - weekRates[1],
		Volatility:        stddev(weekRates),
		WeekdayPreference: modalWeekday(logs),
		TimePreference:    modalHour(logs),
	}
}

// AnalyzeTimeFactors computes per-hour and per-weekday success rates (the
// share of attempts at that hour/weekday that were completed) and the hour
// window with the best rate. With no history it falls back to a morning
// window.
func AnalyzeTimeFactors(habit storage.Habit, logs []storage.CompletionLog, now time.Time) TimeFactors {
	if len(logs) == 0 {
		return TimeFactors{OptimalStartHour: defaultOptimalHour, OptimalEndHour: defaultOptimalHour + 1}
	}

	hours := hourRates(logs)
	days := weekdayRates(logs)

	var last *time.Time
	for i := range logs {
		if !logs[i].Completed {
			continue
		}
		if last == nil || logs[i].CompletedAt.After(*last) {
			last = &logs[i].CompletedAt
		}
	}
	var since time.Duration
	if last != nil {
		since = now.Sub(*last)
	}

	start := bestHour(hours)
	end := start + 1
	for end < 24 && hours[end].rate() == hours[start].rate() && hours[end].total > 0 {
		end++
	}

	return TimeFactors{
		CurrentHourRate:    hours[now.Hour()].rate(),
		CurrentWeekdayRate: days[int(now.Weekday())].rate(),
		TimeSinceLast:      since,
		OptimalStartHour:   start,
		OptimalEndHour:     end,
	}
}

// AnalyzeStreakMomentum measures the week-over-week trend of the habit's
// completion rate and its second derivative.
func AnalyzeStreakMomentum(habit storage.Habit, logs []storage.CompletionLog, now time.Time) StreakMomentum {
	momentumNow := weeklyMomentum(habit, logs, now)
	momentumPrior := weeklyMomentum(habit, logs, now.AddDate(0, 0, -momentumWindowDays))

	return StreakMomentum{
		WeeklyMomentum:      momentumNow,
		LongestRecentStreak: longestRecentStreak(habit, logs, now),
		Acceleration:        momentumNow - momentumPrior,
	}
}

func weeklyMomentum(habit storage.Habit, logs []storage.CompletionLog, now time.Time) float64 {
	return completionRate(habit, logs, now, 0, momentumWindowDays) -
		completionRate(habit, logs, now, momentumWindowDays, 2*momentumWindowDays)
}

// completionRate is the share of frequency units between fromDays and toDays
// ago (half-open, counting back from now) that contain a completion.
func completionRate(habit storage.Habit, logs []storage.CompletionLog, now time.Time, fromDays, toDays int) float64 {
	unit := Frequency(habit.Frequency).UnitDays()
	units := (toDays - fromDays) / unit
	if units < 1 {
		units = 1
	}

	done := map[int]bool{}
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		off := daysBetween(now, l.CompletedAt)
		if off < fromDays || off >= toDays {
			continue
		}
		done[(off-fromDays)/unit] = true
	}
	return clamp01(float64(len(done)) / float64(units))
}

// longestRecentStreak is the longest run of consecutive completed units in
// the trailing 30 days.
func longestRecentStreak(habit storage.Habit, logs []storage.CompletionLog, now time.Time) int {
	unit := Frequency(habit.Frequency).UnitDays()
	done := map[int]bool{}
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		off := daysBetween(now, l.CompletedAt)
		if off < 0 || off >= consistencyWindowDays {
			continue
		}
		done[off/unit] = true
	}

	longest, run := 0, 0
	for u := consistencyWindowDays / unit; u >= 0; u-- {
		if done[u] {
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

type bucket struct {
	done  int
	total int
}

func (b bucket) rate() float64 {
	if b.total == 0 {
		return 0
	}
	return float64(b.done) / float64(b.total)
}

func hourRates(logs []storage.CompletionLog) [24]bucket {
	var out [24]bucket
	for _, l := range logs {
		h := l.CompletedAt.Hour()
		out[h].total++
		if l.Completed {
			out[h].done++
		}
	}
	return out
}

func weekdayRates(logs []storage.CompletionLog) [7]bucket {
	var out [7]bucket
	for _, l := range logs {
		d := int(l.CompletedAt.Weekday())
		out[d].total++
		if l.Completed {
			out[d].done++
		}
	}
	return out
}

// bestHour picks the hour with the highest success rate; ties go to the
// earliest hour.
func bestHour(hours [24]bucket) int {
	best := 0
	for h := 1; h < 24; h++ {
		if hours[h].rate() > hours[best].rate() {
			best = h
		}
	}
	return best
}

func modalHour(logs []storage.CompletionLog) int {
	var counts [24]int
	for _, l := range logs {
		if l.Completed {
			counts[l.CompletedAt.Hour()]++
		}
	}
	best := 0
	for h := 1; h < 24; h++ {
		if counts[h] > counts[best] {
			best = h
		}
	}
	return best
}

func modalWeekday(logs []storage.CompletionLog) time.Weekday {
	var counts [7]int
	for _, l := range logs {
		if l.Completed {
			counts[int(l.CompletedAt.Weekday())]++
		}
	}
	best := 0
	for d := 1; d < 7; d++ {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return time.Weekday(best)
}

func stddev(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))

	variance := 0.0
	for _, v := range vals {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(vals))
	return math.Sqrt(variance)
}
