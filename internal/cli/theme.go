package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/theme"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the terminal theme",
		Long: `Manage the terminal theme used for tables, swatches and the palette picker.

Examples:
  taskboard theme list
  taskboard theme set dark`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [theme-name]",
		Short: "Set the theme",
		Args:  cobra.ExactArgs(1),
		RunE:  runThemeSet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE:  runThemeList,
	})

	return cmd
}

// sets the theme directly
func runThemeSet(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	if !theme.ThemeExists(themeName) {
		return fmt.Errorf("theme '%s' not found. Run 'taskboard theme list' to see available themes", themeName)
	}

	if err := config.UpdateTheme(themeName); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", themeName)
	return nil
}

// lists all available themes
func runThemeList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.GetDefaultConfig()
	}

	themeName := cfg.ThemeName
	if themeName == "" {
		themeName = "default"
	}

	styles := theme.NewStyles(theme.ResolveTheme(themeName))
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Header.Render(" Available Themes "))
	for _, name := range theme.ListThemes() {
		prefix := "  "
		label := name
		if name == themeName {
			prefix = "▶ "
			label = styles.Success.Render(name + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", prefix, label)
	}

	return nil
}
