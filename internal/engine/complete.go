package engine

import (
	"context"
	"fmt"

	"momentum/internal/storage"
)

type CompleteResult struct {
	HabitID      int64
	XPAwarded    int
	Streak       int
	StreakRecord bool // new longest-streak high-water mark
	LevelBefore  int
	LevelAfter   int
	LevelUp      bool
	Unlocked     []AchievementDef
}

// CompleteHabit runs the completion pipeline: append a log, recompute the
// streak, ratchet the longest-streak mark, award XP, then re-evaluate
// achievements against the updated snapshot. The caller must not run two
// pipelines for the same habit concurrently.
func (s *Service) CompleteHabit(ctx context.Context, id int64, mood *int) (*CompleteResult, error) {
	if mood != nil && (*mood < 1 || *mood > 5) {
		return nil, fmt.Errorf("mood must be between 1 and 5, got %d", *mood)
	}

	habit, err := s.habits.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, fmt.Errorf("habit %d not found", id)
	}
	if !habit.IsActive {
		return nil, fmt.Errorf("habit %d is archived", id)
	}

	profile, err := s.profiles.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := profile.Level

	now := s.now()
	xp := habit.XPValue
	if xp < 1 {
		xp = 1
	}

	if _, err := s.logs.Insert(ctx, storage.CompletionLog{
		HabitID:     id,
		CompletedAt: now,
		Completed:   true,
		Mood:        mood,
		XPEarned:    &xp,
	}); err != nil {
		return nil, err
	}

	habitLogs, err := s.logs.ListByHabit(ctx, id)
	if err != nil {
		return nil, err
	}
	streak := ComputeStreak(*habit, habitLogs)
	if err := s.habits.UpdateStreak(ctx, id, streak); err != nil {
		return nil, err
	}

	updated, _, _ := ApplyXP(*profile, xp)
	updated, record := RatchetLongestStreak(updated, streak)

	statuses, err := s.AchievementStatuses(ctx)
	if err != nil {
		return nil, err
	}
	allHabits, err := s.habits.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	allLogs, err := s.logs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	eval := EvaluateAll(statuses, updated, allHabits, allLogs, now)

	if err := s.profiles.Update(ctx, &eval.Profile); err != nil {
		return nil, err
	}
	for _, st := range eval.Achievements {
		if err := s.achievements.Upsert(ctx, storage.Achievement{
			Code:       st.Def.Code,
			Progress:   st.Progress,
			UnlockedAt: st.UnlockedAt,
		}); err != nil {
			return nil, err
		}
	}

	s.log.Debug("habit completed",
		"habit", id, "xp", xp, "streak", streak,
		"level", eval.Profile.Level, "unlocked", len(eval.Unlocked))

	return &CompleteResult{
		HabitID:      id,
		XPAwarded:    xp,
		Streak:       streak,
		StreakRecord: record,
		LevelBefore:  levelBefore,
		LevelAfter:   eval.Profile.Level,
		LevelUp:      eval.Profile.Level > levelBefore,
		Unlocked:     eval.Unlocked,
	}, nil
}

// SkipHabit records a deliberate miss. No XP, no streak change; the log row
// feeds the analytics (success rates count it as a failed attempt).
func (s *Service) SkipHabit(ctx context.Context, id int64, mood *int) error {
	if mood != nil && (*mood < 1 || *mood > 5) {
		return fmt.Errorf("mood must be between 1 and 5, got %d", *mood)
	}

	habit, err := s.habits.Get(ctx, id)
	if err != nil {
		return err
	}
	if habit == nil {
		return fmt.Errorf("habit %d not found", id)
	}
	if !habit.IsActive {
		return fmt.Errorf("habit %d is archived", id)
	}

	_, err = s.logs.Insert(ctx, storage.CompletionLog{
		HabitID:     id,
		CompletedAt: s.now(),
		Completed:   false,
		Mood:        mood,
	})
	if err != nil {
		return err
	}
	s.log.Debug("habit skipped", "habit", id)
	return nil
}
