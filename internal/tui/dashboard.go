// Package tui implements a live terminal dashboard of scanned annotations.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/todowatch/internal/output"
	"github.com/twiced-technology-gmbh/todowatch/internal/urgency"
)

// tickInterval is how often the dashboard re-classifies on its own, so the
// evening rule flips without a file change.
const tickInterval = time.Minute

// Styles.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	urgencyStyles = map[urgency.Category]lipgloss.Style{
		urgency.Overdue: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		urgency.DueSoon: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		urgency.NotYet:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// RefreshMsg asks the dashboard to rescan. The watcher sends it through
// Program.Send when documents change.
type RefreshMsg struct{}

type tickMsg time.Time

// Scanner produces the current classified annotations.
type Scanner func() []output.Item

// Dashboard is the top-level bubbletea model.
type Dashboard struct {
	scan    Scanner
	items   []output.Item
	updated time.Time
	width   int
	height  int
}

// NewDashboard creates a Dashboard that pulls items through scan.
func NewDashboard(scan Scanner) *Dashboard {
	return &Dashboard{scan: scan}
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd {
	return tea.Batch(refresh, tick())
}

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return d, tea.Quit
		case key.Matches(msg, keys.Refresh):
			return d, refresh
		}
		return d, nil

	case RefreshMsg:
		d.items = d.scan()
		d.updated = time.Now()
		return d, nil

	case tickMsg:
		d.items = d.scan()
		d.updated = time.Now()
		return d, tick()
	}

	return d, nil
}

// View implements tea.Model.
func (d *Dashboard) View() string {
	var b []string

	b = append(b, titleStyle.Render("todowatch"))
	if !d.updated.IsZero() {
		b = append(b, dimStyle.Render("updated "+d.updated.Format("15:04:05")))
	}
	b = append(b, "")

	for _, cat := range []urgency.Category{urgency.Overdue, urgency.DueSoon, urgency.NotYet} {
		section := d.section(cat)
		if section != "" {
			b = append(b, section)
		}
	}

	if len(d.items) == 0 {
		b = append(b, dimStyle.Render("No TODOs found."))
	}

	b = append(b, "", dimStyle.Render("r refresh · q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

// section renders one urgency bucket, or "" when it is empty.
func (d *Dashboard) section(cat urgency.Category) string {
	var lines []string
	for _, it := range d.items {
		if it.Urgency != cat {
			continue
		}
		line := "  " + urgencyStyles[cat].Render(it.Due) + "  " + it.Text +
			"  " + dimStyle.Render(it.Source())
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return ""
	}

	header := sectionStyle.Render(cat.String())
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, append(lines, "")...)...)
}

func refresh() tea.Msg {
	return RefreshMsg{}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
