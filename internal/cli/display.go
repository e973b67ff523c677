package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/display"
	"taskboard/internal/domain"
)

func newBadgeCmd() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "badge [priority]",
		Short: "Show the badge classes for a priority",
		Long: `Print the CSS class tokens used for a priority badge, followed by a
rendered preview. Recognized priorities are High, Medium and Low; anything
else gets the Medium badge. Matching is exact unless --lenient is given.

Examples:
  taskboard badge High
  taskboard badge --lenient low`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := loadStyles()

			priority := domain.Priority(args[0])
			if lenient {
				if p, err := domain.ParsePriority(args[0]); err == nil {
					priority = p
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s\n",
				priority.BadgeClasses(),
				display.GetPriorityIcon(priority),
				styles.Badge(string(priority)),
			)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&lenient, "lenient", "l", false, "Match priority names case-insensitively")
	return cmd
}

func newDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date [date]",
		Short: "Format a date for display",
		Long: `Format a date the way the UI displays it, e.g. "Jan 5, 2024".

Examples:
  taskboard date 2024-01-05
  taskboard date 2024-01-05T09:30:00Z`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := display.ParseDisplayDate(args[0])
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), display.InvalidDate)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), display.FormatDate(t))
			return nil
		},
	}
}
