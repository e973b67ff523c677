package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/theme"
)

type rootOptions struct {
	dbPath    string
	configDir string
	verbose   bool
	ephemeral bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "Taskboard - categories, colors and display helpers for your tasks",
		Long: `Taskboard manages the task categories shared by the Taskboard UI:
their names, their palette colors, and the display conventions used for
priority badges and dates.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configDir != "" {
				config.SetConfigDir(opts.configDir)
			}

			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			displayWelcome(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dbPath, "db", "", "Path to the database (overrides config)")
	flags.StringVar(&opts.configDir, "config-dir", "", "Directory holding config.yaml (default ~/.taskboard)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.ephemeral, "ephemeral", false, "Keep categories in memory only")

	rootCmd.AddCommand(
		newCategoryCmd(opts),
		newBadgeCmd(),
		newDateCmd(),
		newThemeCmd(),
	)

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadStyles() *theme.Styles {
	cfg, err := config.LoadConfig()
	if err != nil {
		// fallback to default
		cfg = config.GetDefaultConfig()
	}
	return theme.NewStyles(theme.ResolveTheme(cfg.ThemeName))
}

func displayWelcome(cmd *cobra.Command) {
	styles := loadStyles()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Title.Render("T A S K B O A R D"))
	fmt.Fprintln(out, styles.Subtitle.Render("Categories, colors and badges for your tasks"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'taskboard --help' to see available commands.")
}
