package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/config"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/session"
	"github.com/Tiliavir/dietbook/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "dietbook",
	Short: "DietBook – track what you eat from the command line",
	Long: `dietbook is an interactive, file-based diet tracker.
Your profile and food log are stored as plain text files, by default
UserInfo.txt and FoodList.txt in the working directory. Foods can be
logged from the food database in FoodData.txt, or from a built-in one.
Settings live in ~/.dietbook/config.json.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	logger.Debug("configuration loaded",
		slog.String("food_path", cfg.FoodPath()),
		slog.String("profile_path", cfg.ProfilePath()),
		slog.String("catalog_path", cfg.CatalogPath()),
	)

	m := manager.NewFromPaths(cfg.FoodPath(), cfg.ProfilePath(), cfg.CatalogPath(), logger)
	u := ui.New(cmd.InOrStdin(), cmd.OutOrStdout())
	return session.New(m, u, logger).Run()
}
