package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newInsightsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "insights <id>",
		Short: "Show patterns, forecast and scheduling for a habit",
		Args:  habitIDArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			ins, err := svc.Insights(ctx, id, days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Insights — "+ins.Habit.Name))
			fmt.Fprintln(out, ui.LabelValue("Streak", ui.Streak(ins.Habit.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Due today", yesNo(ins.DueToday)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Patterns"))
			fmt.Fprintf(out, "- Consistency (30d): %.0f%%\n", ins.Patterns.Consistency*100)
			fmt.Fprintf(out, "- Momentum (7d vs prior): %+.2f\n", ins.Patterns.Momentum)
			fmt.Fprintf(out, "- Volatility: %.2f\n", ins.Patterns.Volatility)
			fmt.Fprintf(out, "- Favorite slot: %s around %02d:00\n", ins.Patterns.WeekdayPreference, ins.Patterns.TimePreference)
			fmt.Fprintf(out, "- Weekly momentum %+.2f, acceleration %+.2f, best recent run %d\n",
				ins.Momentum.WeeklyMomentum, ins.Momentum.Acceleration, ins.Momentum.LongestRecentStreak)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Forecast"))
			fmt.Fprintf(out, "- %d-day streak survival: %.0f%%\n", days, ins.Prediction.Probability)
			fmt.Fprintf(out, "- %s\n", ins.Prediction.RecommendedAction)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconClock+" Scheduling"))
			fmt.Fprintf(out, "- Optimal hour: %02d:00 (%.0f%% success)\n", ins.Scheduling.OptimalHour, ins.Scheduling.SuccessRate*100)
			fmt.Fprintf(out, "- %s\n", ins.Scheduling.Reasoning)
			if len(ins.Scheduling.AlternativeHours) > 0 {
				alt := ""
				for i, h := range ins.Scheduling.AlternativeHours {
					if i > 0 {
						alt += ", "
					}
					alt += fmt.Sprintf("%02d:00", h)
				}
				fmt.Fprintf(out, "- Alternatives: %s\n", alt)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "Forecast horizon in days")

	return cmd
}

func yesNo(b bool) string {
	if b {
		return ui.Warn.Render("yes")
	}
	return ui.Good.Render("no")
}
