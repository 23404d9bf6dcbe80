package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newAddCmd() *cobra.Command {
	var category string
	var frequency string
	var difficulty string
	var xp int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, err := engine.ParseCategory(category)
			if err != nil {
				return err
			}
			freq, err := engine.ParseFrequency(frequency)
			if err != nil {
				return err
			}
			diff, err := engine.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			h, err := svc.CreateHabit(ctx, engine.CreateHabitInput{
				Name:       args[0],
				Category:   cat,
				Frequency:  freq,
				Difficulty: diff,
				XPValue:    xp,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconLoop, "Habit added"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", h.ID))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", h.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Category", h.Category))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Frequency", h.Frequency))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", h.XPValue))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "other", "Category (health|fitness|learning|productivity|social|creativity|mindfulness|other)")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "daily", "Frequency (daily|weekly|custom)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "Difficulty (easy|medium|hard)")
	cmd.Flags().IntVar(&xp, "xp", 0, "XP per completion (0 = difficulty default)")

	return cmd
}
