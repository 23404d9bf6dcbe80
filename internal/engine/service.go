package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"momentum/internal/storage"
)

// Service composes the pure engine functions with the storage repos. It is
// the single writer: one completion pipeline per habit at a time.
type Service struct {
	db           *sql.DB
	log          *slog.Logger
	habits       *storage.HabitRepo
	logs         *storage.LogRepo
	profiles     *storage.ProfileRepo
	achievements *storage.AchievementRepo
	now          func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:           db,
		log:          slog.Default(),
		habits:       storage.NewHabitRepo(db),
		logs:         storage.NewLogRepo(db),
		profiles:     storage.NewProfileRepo(db),
		achievements: storage.NewAchievementRepo(db),
		now:          time.Now,
	}
}

// WithClock overrides the service clock. Tests use it to pin timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) HabitRepo() *storage.HabitRepo             { return s.habits }
func (s *Service) LogRepo() *storage.LogRepo                 { return s.logs }
func (s *Service) ProfileRepo() *storage.ProfileRepo         { return s.profiles }
func (s *Service) AchievementRepo() *storage.AchievementRepo { return s.achievements }

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("name is required")
	}
	return n, nil
}

type CreateHabitInput struct {
	Name       string
	Category   Category
	Frequency  Frequency
	Difficulty Difficulty
	XPValue    int
}

func (s *Service) CreateHabit(ctx context.Context, in CreateHabitInput) (*storage.Habit, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = CategoryOther
	}
	if !in.Category.IsValid() {
		return nil, fmt.Errorf("invalid category: %q", in.Category)
	}
	if in.Frequency == "" {
		in.Frequency = FrequencyDaily
	}
	if !in.Frequency.IsValid() {
		return nil, fmt.Errorf("invalid frequency: %q", in.Frequency)
	}
	if in.Difficulty == "" {
		in.Difficulty = DifficultyEasy
	}
	if !in.Difficulty.IsValid() {
		return nil, fmt.Errorf("invalid difficulty: %q", in.Difficulty)
	}
	if in.XPValue <= 0 {
		in.XPValue = DefaultXPValue(in.Difficulty)
	}

	h := storage.Habit{
		Name:       name,
		Category:   string(in.Category),
		Frequency:  string(in.Frequency),
		Difficulty: string(in.Difficulty),
		XPValue:    in.XPValue,
		IsActive:   true,
	}
	id, err := s.habits.Insert(ctx, h)
	if err != nil {
		return nil, err
	}
	s.log.Debug("habit created", "id", id, "name", name, "category", in.Category)
	return s.habits.Get(ctx, id)
}

func (s *Service) ListHabits(ctx context.Context, includeArchived bool) ([]storage.Habit, error) {
	if includeArchived {
		return s.habits.ListAll(ctx)
	}
	return s.habits.ListActive(ctx)
}

func (s *Service) ArchiveHabit(ctx context.Context, id int64) error {
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("habit %d not found", id)
	}
	return s.habits.SetActive(ctx, id, false)
}

// Profile returns the main profile, healing the level if it drifted from
// what the XP total implies.
func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	p, err := s.profiles.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	computed := LevelForXP(p.CurrentXP)
	if p.Level != computed {
		p.Level = computed
		p.XPForNextLevel = XPForNextLevel(computed)
		if err := s.profiles.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AchievementStatuses merges the built-in catalog with the stored runtime
// state. Missing rows mean zero progress.
func (s *Service) AchievementStatuses(ctx context.Context) ([]AchievementStatus, error) {
	rows, err := s.achievements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]storage.Achievement, len(rows))
	for _, r := range rows {
		byCode[r.Code] = r
	}

	defs := BuiltinAchievements()
	out := make([]AchievementStatus, 0, len(defs))
	for _, def := range defs {
		st := AchievementStatus{Def: def}
		if r, ok := byCode[def.Code]; ok {
			st.Progress = r.Progress
			st.UnlockedAt = r.UnlockedAt
		}
		out = append(out, st)
	}
	return out, nil
}

// HabitInsights bundles the analytics surfaces for one habit.
type HabitInsights struct {
	Habit      storage.Habit
	DueToday   bool
	Patterns   HabitPatterns
	Factors    TimeFactors
	Momentum   StreakMomentum
	Prediction StreakPrediction
	Scheduling SchedulingRecommendation
}

func (s *Service) Insights(ctx context.Context, habitID int64, horizonDays int) (*HabitInsights, error) {
	h, err := s.habits.Get(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("habit %d not found", habitID)
	}
	logs, err := s.logs.ListByHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &HabitInsights{
		Habit:      *h,
		DueToday:   IsDueToday(*h, logs, now),
		Patterns:   AnalyzePatterns(*h, logs, now),
		Factors:    AnalyzeTimeFactors(*h, logs, now),
		Momentum:   AnalyzeStreakMomentum(*h, logs, now),
		Prediction: PredictStreakSuccess(*h, logs, horizonDays, now),
		Scheduling: OptimalScheduling(*h, logs, now),
	}, nil
}

func (s *Service) Recommendations(ctx context.Context) ([]HabitRecommendation, error) {
	habits, err := s.habits.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return GenerateRecommendations(habits, logs, s.now()), nil
}
