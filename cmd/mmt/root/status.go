package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streaks and achievement tally",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}

			into := engine.XPIntoLevel(*p)
			bracket := engine.XPForNextLevel(p.Level)
			toNext := bracket - into
			if toNext < 0 {
				toNext = 0
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total XP", fmt.Sprintf("%d %s %d/%d to next (%d to go)",
				p.CurrentXP, ui.ProgressBar(into, bracket, 20), into, bracket, toNext)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Longest streak", ui.Streak(p.LongestStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			habits, err := svc.ListHabits(ctx, false)
			if err != nil {
				return err
			}
			now := time.Now()
			due := 0
			for _, h := range habits {
				logs, err := svc.LogRepo().ListByHabit(ctx, h.ID)
				if err != nil {
					return err
				}
				if engine.IsDueToday(h, logs, now) {
					due++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Active habits", fmt.Sprintf("%d (%d due today)", len(habits), due)))

			statuses, err := svc.AchievementStatuses(ctx)
			if err != nil {
				return err
			}
			earned := 0
			for _, st := range statuses {
				if st.Unlocked() {
					earned++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Achievements", fmt.Sprintf("%d/%d %s", earned, len(statuses), ui.IconTrophy)))
			return nil
		},
	}

	return cmd
}
