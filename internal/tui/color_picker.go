package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/display"
	"taskboard/internal/domain"
	"taskboard/internal/theme"
)

// selection tokens; none of them may be a palette class or a row would
// lose its own color class when deselected
var (
	selectedClasses   = []string{"ring-2", "ring-offset-2"}
	unselectedClasses = []string{"ring-0"}
)

// ColorPickerModel lets the user pick a palette entry for one category.
type ColorPickerModel struct {
	category domain.Category
	options  []domain.ColorOption
	buttons  []*display.Button
	cursor   int
	styles   *theme.Styles
	keys     keyMap
	width    int
	quitting bool
	chosen   bool
}

// NewColorPickerModel starts with the cursor on the category's current color.
func NewColorPickerModel(c domain.Category, styles *theme.Styles) ColorPickerModel {
	options := domain.ColorOptions()
	buttons := make([]*display.Button, len(options))
	cursor := 0
	for i, opt := range options {
		buttons[i] = display.NewButton(opt.Value, opt.Name, opt.BgClass)
		if opt.Value == c.CustomColor {
			cursor = i
		}
	}

	m := ColorPickerModel{
		category: c,
		options:  options,
		buttons:  buttons,
		styles:   styles,
		keys:     defaultKeyMap(),
		width:    60,
	}
	m.moveTo(cursor)
	return m
}

func (m *ColorPickerModel) moveTo(i int) {
	if i < 0 || i >= len(m.buttons) {
		return
	}
	m.cursor = i
	display.ToggleSelectedButtonStyles(m.buttons, m.buttons[i], selectedClasses, unselectedClasses)
}

func (m ColorPickerModel) Init() tea.Cmd {
	return nil
}

func (m ColorPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.moveTo(m.cursor - 1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.moveTo(m.cursor + 1)
			return m, nil

		case key.Matches(msg, m.keys.Confirm):
			m.chosen = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ColorPickerModel) View() string {
	if m.quitting {
		if m.chosen {
			return ""
		}
		return "Color unchanged.\n"
	}

	var b strings.Builder

	b.WriteString(m.styles.TUITitle.Render(fmt.Sprintf("Color for %s", m.category.Name)))
	b.WriteString("\n")
	b.WriteString(m.styles.TUISubtitle.Render(fmt.Sprintf("current: %s", display.ColorName(m.category.CustomColor))))
	b.WriteString("\n\n")

	rowWidth := m.width - 8
	if rowWidth < 30 {
		rowWidth = 30
	}

	for i, btn := range m.buttons {
		prefix := "  "
		style := m.styles.UnselectedRow
		if btn.HasClass(selectedClasses[0]) {
			prefix = "▶ "
			style = m.styles.SelectedRow
		}

		opt := m.options[i]
		line := fmt.Sprintf("%s%-13s %s", prefix, opt.Name, opt.Value)
		b.WriteString(m.styles.Swatch(opt.Value))
		b.WriteString(" ")
		b.WriteString(style.Width(rowWidth).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.TUIHelp.Render(m.keys.helpLine()))

	return m.styles.Container.Render(b.String()) + "\n"
}

// Selected returns the confirmed option. ok is false if the picker was cancelled.
func (m ColorPickerModel) Selected() (domain.ColorOption, bool) {
	if !m.chosen {
		return domain.ColorOption{}, false
	}
	return m.options[m.cursor], true
}

// RunColorPicker runs the picker full screen and returns the confirmed option.
func RunColorPicker(c domain.Category, styles *theme.Styles) (domain.ColorOption, bool, error) {
	p := tea.NewProgram(NewColorPickerModel(c, styles), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return domain.ColorOption{}, false, fmt.Errorf("failed to run color picker: %w", err)
	}

	m, ok := final.(ColorPickerModel)
	if !ok {
		return domain.ColorOption{}, false, nil
	}
	opt, chosen := m.Selected()
	return opt, chosen, nil
}
