package engine

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryLearning     Category = "learning"
	CategoryProductivity Category = "productivity"
	CategorySocial       Category = "social"
	CategoryCreativity   Category = "creativity"
	CategoryMindfulness  Category = "mindfulness"
	CategoryOther        Category = "other"
)

func AllCategories() []Category {
	return []Category{
		CategoryHealth,
		CategoryFitness,
		CategoryLearning,
		CategoryProductivity,
		CategorySocial,
		CategoryCreativity,
		CategoryMindfulness,
		CategoryOther,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryFitness, CategoryLearning, CategoryProductivity,
		CategorySocial, CategoryCreativity, CategoryMindfulness, CategoryOther:
		return true
	default:
		return false
	}
}

func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return CategoryOther, nil
	}
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %q", input)
	}
	return c, nil
}

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return FrequencyDaily, nil
	}
	f := Frequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

// UnitDays is the length of one streak unit in days. Custom cadences keep
// daily semantics; see ComputeStreak.
func (f Frequency) UnitDays() int {
	if f == FrequencyWeekly {
		return 7
	}
	return 1
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

func ParseDifficulty(input string) (Difficulty, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return DifficultyEasy, nil
	}
	d := Difficulty(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid difficulty: %q", input)
	}
	return d, nil
}

// DefaultXPValue is used when a habit is created without an explicit XP value.
func DefaultXPValue(d Difficulty) int {
	switch d {
	case DifficultyMedium:
		return 25
	case DifficultyHard:
		return 50
	default:
		return 10
	}
}
