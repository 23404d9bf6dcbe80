package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show achievement progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			statuses, err := svc.AchievementStatuses(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Achievements"))
			for _, st := range statuses {
				switch {
				case st.Unlocked():
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
						st.Def.Icon, ui.Good.Render(st.Def.Name),
						ui.Muted.Render(st.Def.Description),
						ui.Muted.Render(st.UnlockedAt.Format("2006-01-02")))
				case st.Def.Hidden:
					// Hidden achievements stay masked until earned.
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconLock, ui.Muted.Render("???"))
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %3.0f%%\n",
						st.Def.Icon, st.Def.Name,
						ui.Muted.Render(st.Def.Description),
						ui.ProgressBar(int(st.Progress*100), 100, 10), st.Progress*100)
				}
			}
			return nil
		},
	}

	return cmd
}
