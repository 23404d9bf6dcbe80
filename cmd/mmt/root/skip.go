package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newSkipCmd() *cobra.Command {
	var mood int

	cmd := &cobra.Command{
		Use:   "skip <id>",
		Short: "Record a deliberate miss for a habit",
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

			if err := svc.SkipHabit(ctx, id, moodPtr); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Miss recorded. It feeds the stats; streak untouched until the gap is real."))
			return nil
		},
	}

	cmd.Flags().IntVarP(&mood, "mood", "m", 0, "Mood rating (1-5)")

	return cmd
}
