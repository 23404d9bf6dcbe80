package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest habits to add or adjust",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			recs, err := svc.Recommendations(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBulb, "Suggestions"))
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(nothing yet — log a few completions first)"))
				return nil
			}
			for _, r := range recs {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", ui.Key.Render(r.Name),
					ui.Muted.Render(fmt.Sprintf("[%s/%s]", r.Category, r.Difficulty)),
					ui.Muted.Render(fmt.Sprintf("confidence %.2f", r.Confidence)))
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", r.Reason)
			}
			return nil
		},
	}

	return cmd
}
