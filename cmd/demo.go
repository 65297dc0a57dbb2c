package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/dropdown/pkg/dropdown"
	"github.com/marcus/dropdown/pkg/dropdown/menu"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an interactive dropdown demo",
	Long: `Run a small Bubble Tea program showcasing the dropdown.

Use the arrow keys to open the menu and move between items, Enter to
select, Escape to close, and the mouse for clicking. Ctrl+C quits.

Set DROPDOWN_LOG to a file path to capture structured logs without
corrupting the terminal UI.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	bindDemoFlags(demoCmd.Flags())
}

func bindDemoFlags(fs *pflag.FlagSet) {
	fs.StringP("direction", "d", "down", "Menu direction: up, down, left, right")
	fs.Bool("align-end", false, "Align the menu's trailing edge with the toggle")
	fs.Bool("flip", true, "Flip the menu when it would overflow the screen")
	fs.Bool("panel", false, "Render a role-less panel instead of a menu (no focus capture)")
	fs.Bool("filter", false, "Add a typeahead filter row to the menu")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo requires an interactive terminal")
	}

	logger, closeLog, err := demoLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	direction, _ := cmd.Flags().GetString("direction")
	alignEnd, _ := cmd.Flags().GetBool("align-end")
	flip, _ := cmd.Flags().GetBool("flip")
	panel, _ := cmd.Flags().GetBool("panel")
	filter, _ := cmd.Flags().GetBool("filter")

	cfg := dropdown.Config{
		Direction: dropdown.ParseDirection(direction),
		AlignEnd:  alignEnd,
	}

	items := []menu.Item{
		{ID: "new", Label: "New file"},
		{ID: "open", Label: "Open…"},
		{ID: "save", Label: "Save"},
		{ID: "save-as", Label: "Save as…"},
		{ID: "export", Label: "Export", Disabled: true},
		{ID: "quit", Label: "Quit"},
	}

	opts := []menu.Option{
		menu.WithTogglePosition(6, 3),
		menu.WithDropdownOptions(
			dropdown.WithFlip(flip),
			dropdown.WithOnToggle(func(open bool, _ tea.Msg, src dropdown.Source) {
				logger.Info("toggle requested", "open", open, "source", src)
			}),
		),
	}
	if panel {
		opts = append(opts, menu.WithPanel())
	}
	if filter {
		opts = append(opts, menu.WithFilter())
	}

	model := &demoModel{logger: logger}
	opts = append(opts, menu.WithOnSelect(func(it menu.Item) {
		model.status = fmt.Sprintf("selected: %s", it.Label)
		logger.Info("item selected", "id", it.ID)
	}))
	model.menu = menu.New("File", items, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// demoLogger builds a slog logger writing to DROPDOWN_LOG, or discarding
// everything when unset. Writing to stdout would fight the TUI.
func demoLogger() (*slog.Logger, func(), error) {
	path := os.Getenv("DROPDOWN_LOG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// demoModel frames the menu with a status footer and quit handling.
type demoModel struct {
	menu   *menu.Model
	logger *slog.Logger
	status string
	width  int
	height int
}

func (m *demoModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// The footer keeps the last row; the menu gets the rest.
		_, cmd := m.menu.Update(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 1})
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	_, cmd := m.menu.Update(msg)
	return m, cmd
}

func (m *demoModel) View() string {
	footer := m.status
	if footer == "" {
		footer = "↑/↓ navigate · enter select · esc close · ctrl+c quit"
	}
	return m.menu.View() + "\n" + statusStyle.Render(footer)
}
