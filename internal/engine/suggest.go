package engine

import (
	"fmt"
	"sort"
	"time"

	"momentum/internal/storage"
)

const (
	maxRecommendations = 5

	categoryGapMinRate   = 0.70
	rebuildMaxRate       = 0.50
	rebuildWindowDays    = 14
	progressionMinStreak = 7
	suggestionWindowDays = 30
)

// HabitRecommendation is a ranked suggestion for a habit to add or adjust.
type HabitRecommendation struct {
	Name       string
	Category   Category
	Difficulty Difficulty
	Reason     string
	Confidence float64 // [0,1], used for ranking and truncation
}

// relatedCategories maps each category to the ones whose track record
// predicts success in it. Empty means "judge by overall history".
var relatedCategories = map[Category][]Category{
	CategoryHealth:       {CategoryFitness, CategoryMindfulness},
	CategoryFitness:      {CategoryHealth},
	CategoryLearning:     {CategoryProductivity, CategoryCreativity},
	CategoryProductivity: {CategoryLearning},
	CategorySocial:       {CategoryOther},
	CategoryCreativity:   {CategoryLearning, CategoryMindfulness},
	CategoryMindfulness:  {CategoryHealth, CategoryCreativity},
	CategoryOther:        {},
}

var starterHabits = map[Category]string{
	CategoryHealth:       "Drink a glass of water",
	CategoryFitness:      "Ten-minute walk",
	CategoryLearning:     "Read five pages",
	CategoryProductivity: "Plan tomorrow in three bullets",
	CategorySocial:       "Message a friend",
	CategoryCreativity:   "Sketch for five minutes",
	CategoryMindfulness:  "Two minutes of breathing",
	CategoryOther:        "One small win",
}

// GenerateRecommendations runs the four suggestion strategies in sequence,
// deduplicates by (name, category), and returns at most five entries sorted
// by descending confidence. Pure and total over empty input.
func GenerateRecommendations(habits []storage.Habit, logs []storage.CompletionLog, now time.Time) []HabitRecommendation {
	var recs []HabitRecommendation
	recs = append(recs, categoryGapRecommendations(habits, logs, now)...)
	recs = append(recs, difficultyProgressionRecommendations(habits)...)
	recs = append(recs, timingRecommendations(logs)...)
	recs = append(recs, rebuildRecommendations(habits, logs, now)...)

	recs = dedupeRecommendations(recs)

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Confidence != recs[j].Confidence {
			return recs[i].Confidence > recs[j].Confidence
		}
		return recs[i].Name < recs[j].Name
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// categoryGapRecommendations suggests a starter habit for each unrepresented
// category where the user's related-category success rate is at least 70%.
func categoryGapRecommendations(habits []storage.Habit, logs []storage.CompletionLog, now time.Time) []HabitRecommendation {
	present := presentCategories(habits)

	var out []HabitRecommendation
	for _, cat := range AllCategories() {
		if present[cat] {
			continue
		}
		rate, attempts := categorySuccessRate(habits, logs, relatedCategories[cat], now, suggestionWindowDays)
		if attempts == 0 || rate < categoryGapMinRate {
			continue
		}
		out = append(out, HabitRecommendation{
			Name:       starterHabits[cat],
			Category:   cat,
			Difficulty: DifficultyEasy,
			Reason:     fmt.Sprintf("You succeed %.0f%% of the time in related categories; %s looks like a natural next area.", rate*100, cat),
			Confidence: minFloat(0.9, rate),
		})
	}
	return out
}

// difficultyProgressionRecommendations promotes easy habits that have held a
// week-long streak.
func difficultyProgressionRecommendations(habits []storage.Habit) []HabitRecommendation {
	var out []HabitRecommendation
	for _, h := range habits {
		if !h.IsActive || Difficulty(h.Difficulty) != DifficultyEasy || h.CurrentStreak < progressionMinStreak {
			continue
		}
		confidence := 0.6 + 0.02*float64(h.CurrentStreak-progressionMinStreak)
		out = append(out, HabitRecommendation{
			Name:       h.Name + " — step up",
			Category:   Category(h.Category),
			Difficulty: DifficultyMedium,
			Reason:     fmt.Sprintf("%d-day streak on %q; it is ready for a medium version.", h.CurrentStreak, h.Name),
			Confidence: minFloat(0.9, confidence),
		})
	}
	return out
}

// timingRecommendations suggests consolidating habits around the user's
// peak-activity hour.
func timingRecommendations(logs []storage.CompletionLog) []HabitRecommendation {
	if countCompleted(logs) == 0 {
		return nil
	}
	peak := modalHour(logs)
	return []HabitRecommendation{{
		Name:       fmt.Sprintf("Stack a habit at %02d:00", peak),
		Category:   CategoryProductivity,
		Difficulty: DifficultyEasy,
		Reason:     fmt.Sprintf("Most of your completions land around %02d:00; anchoring there raises follow-through.", peak),
		Confidence: 0.5,
	}}
}

// rebuildRecommendations proposes a low-friction habit for any represented
// category whose trailing completion rate dropped below 50%.
func rebuildRecommendations(habits []storage.Habit, logs []storage.CompletionLog, now time.Time) []HabitRecommendation {
	present := presentCategories(habits)

	var out []HabitRecommendation
	for _, cat := range AllCategories() {
		if !present[cat] {
			continue
		}
		rate, attempts := categorySuccessRate(habits, logs, []Category{cat}, now, rebuildWindowDays)
		if attempts == 0 || rate >= rebuildMaxRate {
			continue
		}
		out = append(out, HabitRecommendation{
			Name:       fmt.Sprintf("Two-minute %s reset", cat),
			Category:   cat,
			Difficulty: DifficultyEasy,
			Reason:     fmt.Sprintf("Your %s completion rate slipped to %.0f%%; rebuild with something tiny.", cat, rate*100),
			Confidence: clamp01(0.4 + (rebuildMaxRate - rate)),
		})
	}
	return out
}

func presentCategories(habits []storage.Habit) map[Category]bool {
	present := map[Category]bool{}
	for _, h := range habits {
		if h.IsActive {
			present[Category(h.Category)] = true
		}
	}
	return present
}

// categorySuccessRate is completed/total attempts over the trailing window
// for habits in the given categories. Empty category set means all habits.
func categorySuccessRate(habits []storage.Habit, logs []storage.CompletionLog, categories []Category, now time.Time, windowDays int) (float64, int) {
	include := map[int64]bool{}
	for _, h := range habits {
		if len(categories) == 0 {
			include[h.ID] = true
			continue
		}
		for _, cat := range categories {
			if Category(h.Category) == cat {
				include[h.ID] = true
				break
			}
		}
	}

	done, total := 0, 0
	for _, l := range logs {
		if !include[l.HabitID] {
			continue
		}
		off := daysBetween(now, l.CompletedAt)
		if off < 0 || off >= windowDays {
			continue
		}
		total++
		if l.Completed {
			done++
		}
	}
	if total == 0 {
		return 0, 0
	}
	return float64(done) / float64(total), total
}

func dedupeRecommendations(recs []HabitRecommendation) []HabitRecommendation {
	type key struct {
		name string
		cat  Category
	}
	best := map[key]int{}
	var out []HabitRecommendation
	for _, r := range recs {
		k := key{r.Name, r.Category}
		if i, ok := best[k]; ok {
			if r.Confidence > out[i].Confidence {
				out[i] = r
			}
			continue
		}
		best[k] = len(out)
		out = append(out, r)
	}
	return out
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
