package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := svc.ListHabits(ctx, all)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconLoop, "Habits"))
			if len(habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none yet — add one with `mmt add`)"))
				return nil
			}

			now := time.Now()
			for _, h := range habits {
				logs, err := svc.LogRepo().ListByHabit(ctx, h.ID)
				if err != nil {
					return err
				}
				due := ""
				if h.IsActive && engine.IsDueToday(h, logs, now) {
					due = " " + ui.Warn.Render("due")
				}
				archived := ""
				if !h.IsActive {
					archived = " " + ui.Muted.Render("(archived)")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %d %s %s streak %s%s%s\n",
					h.ID, h.Name, ui.Muted.Render(fmt.Sprintf("[%s/%s]", h.Category, h.Frequency)),
					ui.Streak(h.CurrentStreak), due, archived)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include archived habits")

	return cmd
}
