package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/keydocs/keytable"
	"go.jacobcolvin.com/keydocs/log"
	"go.jacobcolvin.com/keydocs/render"
)

func (a *app) newBrowseCommand() *cobra.Command {
	var in inputs

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the key names table in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Logs would tear the alt screen; show them in the footer instead.
			feed := log.NewFeed(0)

			handler, err := a.logCfg.NewHandler(feed)
			if err != nil {
				return err
			}

			prev := slog.Default()
			slog.SetDefault(slog.New(handler))

			defer slog.SetDefault(prev)

			t, err := in.load(a.extractCfg)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newBrowser(t, feed),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			_, err = p.Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			return nil
		},
	}

	in.register(cmd, a.getenv, true)

	return cmd
}

// logMsg signals that the log feed has new lines.
type logMsg struct{}

var footerStyle = lipgloss.NewStyle().Faint(true)

// browser is the bubbletea model for the interactive key table.
type browser struct {
	table  *keytable.Table
	feed   *log.Feed
	lines  []string
	width  int
	height int
	offset int
}

func newBrowser(t *keytable.Table, feed *log.Feed) *browser {
	b := &browser{table: t, feed: feed}
	b.layout()

	return b
}

// Init starts listening for log lines.
func (b *browser) Init() tea.Cmd {
	return b.waitForLog()
}

func (b *browser) waitForLog() tea.Cmd {
	return func() tea.Msg {
		<-b.feed.Updated()

		return logMsg{}
	}
}

// Update handles scrolling, resize, log and quit messages.
func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "down", "j":
			b.scroll(1)
		case "up", "k":
			b.scroll(-1)
		case "pgdown", "space", "f":
			b.scroll(b.page())
		case "pgup", "b":
			b.scroll(-b.page())
		case "home", "g":
			b.offset = 0
		case "end", "G":
			b.scroll(len(b.lines))
		}

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.layout()

	case logMsg:
		return b, b.waitForLog()
	}

	return b, nil
}

// View renders the visible part of the table and a footer line.
func (b *browser) View() tea.View {
	v := tea.NewView(b.content())
	v.AltScreen = true

	return v
}

func (b *browser) content() string {
	end := min(b.offset+b.page(), len(b.lines))

	var sb strings.Builder

	for _, line := range b.lines[b.offset:end] {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(footerStyle.Render(b.footer()))

	return sb.String()
}

func (b *browser) footer() string {
	status := fmt.Sprintf("%d keys, %d aliases  line %d/%d  q quit",
		len(b.table.Rows), len(b.table.Aliases), b.offset+1, len(b.lines))

	if last := b.feed.Last(); last != "" {
		status += "  " + last
	}

	if b.width > 0 && lipgloss.Width(status) > b.width {
		status = lipgloss.NewStyle().MaxWidth(b.width).Render(status)
	}

	return status
}

// layout re-renders the table for the current width and clamps the offset.
func (b *browser) layout() {
	rendered := render.TextTable(b.table, b.width, render.DefaultKeyHeader, render.DefaultDescriptionHeader).String()
	b.lines = strings.Split(rendered, "\n")
	b.scroll(0)
}

// page is the number of table lines that fit above the footer.
func (b *browser) page() int {
	if b.height <= 1 {
		return len(b.lines)
	}

	return b.height - 1
}

func (b *browser) scroll(delta int) {
	b.offset = max(0, min(b.offset+delta, len(b.lines)-b.page()))
}
