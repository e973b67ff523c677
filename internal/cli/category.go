package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"taskboard/internal/display"
	"taskboard/internal/domain"
	"taskboard/internal/export"
	"taskboard/internal/tui"
)

const defaultNewCategoryColor = "#6b7280"

func newCategoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat", "categories"},
		Short:   "Manage task categories",
		Long: `Manage the task categories and their colors.

Examples:
  taskboard category list
  taskboard category show Work
  taskboard category add Fitness --color Green
  taskboard category color 2 "#ef4444"
  taskboard category color 2            # pick from the palette
  taskboard category export --format csv --output categories.csv`,
	}

	cmd.AddCommand(
		newCategoryListCmd(opts),
		newCategoryShowCmd(opts),
		newCategoryAddCmd(opts),
		newCategoryRemoveCmd(opts),
		newCategoryColorCmd(opts),
		newCategoryResetCmd(opts),
		newCategoryPaletteCmd(),
		newCategoryExportCmd(opts),
		newCategoryImportCmd(opts),
	)

	return cmd
}

// runs fn with an open session, closing it afterwards
func withSession(opts *rootOptions, fn func(s *session) error) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	return fn(s)
}

func newCategoryListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *session) error {
				res, err := s.service.Categories(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if res.Degraded() {
					fmt.Fprintln(out, s.styles.Warning.Render(
						fmt.Sprintf("! stored categories could not be read (%v), showing last known list", res.ParseErr)))
				}

				printCategoryTable(out, s, res.Categories)
				return nil
			})
		},
	}
}

func printCategoryTable(out io.Writer, s *session, cats []domain.Category) {
	if len(cats) == 0 {
		fmt.Fprintln(out, s.styles.Muted.Render("No categories."))
		return
	}

	fmt.Fprintln(out, s.styles.Header.Render(fmt.Sprintf("%-4s %-16s %-14s %-9s %s", "ID", "Name", "Class", "Color", "")))
	for _, c := range cats {
		fmt.Fprintf(out, " %-4d %-16s %-14s %-9s %s\n",
			c.ID, c.Name, c.Color, c.CustomColor, s.styles.Swatch(c.CustomColor))
	}
}

func newCategoryShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a category by exact name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *session) error {
				c, ok, err := s.service.ByName(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("category '%s' not found", args[0])
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:           %d\n", c.ID)
				fmt.Fprintf(out, "Name:         %s\n", c.Name)
				fmt.Fprintf(out, "Class:        %s\n", c.Color)
				fmt.Fprintf(out, "Custom color: %s (%s) %s\n", c.CustomColor, display.ColorName(c.CustomColor), s.styles.Swatch(c.CustomColor))
				return nil
			})
		},
	}
}

func newCategoryAddCmd(opts *rootOptions) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *session) error {
				c, err := s.service.Add(cmd.Context(), args[0], resolveColorArg(color))
				if err != nil {
					return fmt.Errorf("failed to add category: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), s.styles.Success.Render(
					fmt.Sprintf("✓ Category added: %s", display.FormatCategory(c))))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&color, "color", "c", defaultNewCategoryColor, "Hex value or palette name")
	return cmd
}

func newCategoryRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}

			return withSession(opts, func(s *session) error {
				removed, err := s.service.Remove(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("category with id %d not found", id)
				}

				fmt.Fprintln(cmd.OutOrStdout(), s.styles.Success.Render(fmt.Sprintf("✓ Category %d removed", id)))
				return nil
			})
		},
	}
}

func newCategoryColorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "color [id] [hex|palette-name]",
		Short: "Change a category's color",
		Long: `Change a category's color.

Without a color argument an interactive palette picker opens. Values that
are not in the palette are stored as the custom color while the background
class stays as it was.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}

			return withSession(opts, func(s *session) error {
				ctx := cmd.Context()

				var value string
				if len(args) == 2 {
					value = resolveColorArg(args[1])
				} else {
					res, err := s.service.Categories(ctx)
					if err != nil {
						return err
					}
					idx := domain.IndexOfCategory(res.Categories, id)
					if idx < 0 {
						return fmt.Errorf("category with id %d not found", id)
					}

					opt, chosen, err := tui.RunColorPicker(res.Categories[idx], s.styles)
					if err != nil {
						return err
					}
					if !chosen {
						return nil
					}
					value = opt.Value
				}

				updated, err := s.service.UpdateColor(ctx, id, value)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if !updated {
					fmt.Fprintln(out, s.styles.Muted.Render(fmt.Sprintf("No category with id %d, nothing changed", id)))
					return nil
				}

				if _, ok := domain.FindColorOption(value); !ok {
					fmt.Fprintln(out, s.styles.Warning.Render(
						fmt.Sprintf("! %s is not a palette color, background class unchanged", value)))
				}
				fmt.Fprintln(out, s.styles.Success.Render(fmt.Sprintf("✓ Category %d color set to %s", id, value)))
				return nil
			})
		},
	}
}

func newCategoryResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *session) error {
				if err := s.service.Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s.styles.Success.Render("✓ Default categories restored"))
				return nil
			})
		},
	}
}

func newCategoryPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the selectable colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := loadStyles()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, styles.Header.Render(" Color Palette "))
			for _, opt := range domain.ColorOptions() {
				fmt.Fprintf(out, "  %-13s %-8s %-14s %s\n", opt.Name, opt.Value, opt.BgClass, styles.Swatch(opt.Value))
			}
			return nil
		},
	}
}

func newCategoryExportCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export categories as JSON or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(opts, func(s *session) error {
				w := cmd.OutOrStdout()
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return fmt.Errorf("failed to create output file: %w", err)
					}
					defer f.Close()
					w = f
				}

				ctx := cmd.Context()
				switch strings.ToLower(format) {
				case "json":
					if err := export.NewJSONExporter(s.service).ExportToWriter(ctx, w); err != nil {
						return fmt.Errorf("export failed: %w", err)
					}
				case "csv":
					if err := export.NewCSVExporter(s.service).ExportToCSV(ctx, w); err != nil {
						return fmt.Errorf("export failed: %w", err)
					}
				default:
					return fmt.Errorf("%w: %s (use json or csv)", export.ErrUnsupportedFormat, format)
				}

				if output != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), s.styles.Success.Render(fmt.Sprintf("✓ Categories exported to %s", output)))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func newCategoryImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace categories from a JSON export or array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			return withSession(opts, func(s *session) error {
				n, err := export.NewImporter(s.service).Import(cmd.Context(), f)
				if err != nil {
					return fmt.Errorf("import failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), s.styles.Success.Render(fmt.Sprintf("✓ Imported %d categories", n)))
				return nil
			})
		},
	}
}

func parseCategoryID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid category id: %s", s)
	}
	return id, nil
}

// palette names ("Green") resolve to their hex value; anything else is used as given
func resolveColorArg(arg string) string {
	if opt, ok := domain.FindColorOptionByName(arg); ok {
		return opt.Value
	}
	return strings.TrimSpace(arg)
}
