package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newDoneCmd() *cobra.Command {
	var mood int

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a habit",
		Args:  habitIDArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			var moodPtr *int
			if cmd.Flags().Changed("mood") {
				moodPtr = &mood
			}

			res, err := svc.CompleteHabit(ctx, id, moodPtr)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconDone, "Completed"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("+%d", res.XPAwarded)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", ui.Streak(res.Streak)))
			if res.StreakRecord {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render("New longest streak!"))
			}
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s level %d → %d\n", ui.IconBolt, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			for _, a := range res.Unlocked {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Unlocked: %s %s (+%d XP)\n", ui.IconTrophy, a.Icon, a.Name, a.XPReward)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&mood, "mood", "m", 0, "Mood rating (1-5)")

	return cmd
}

func habitIDArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return errors.New("id must be an integer")
	}
	return nil
}
