package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"momentum/internal/config"
	"momentum/internal/logging"
	"momentum/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "mmt",
	Short:         "Momentum — local-first habit tracker with RPG progression",
	Long:          "Momentum is a local-first CLI/TUI habit tracker: streaks, XP levels, achievements, and completion-pattern forecasts.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logging.Setup(cfg.LogLevel)
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newSkipCmd(),
		newListCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newInsightsCmd(),
		newSuggestCmd(),
		newArchiveCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
