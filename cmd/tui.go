package cmd

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/todowatch/internal/clierr"
	"github.com/twiced-technology-gmbh/todowatch/internal/output"
	"github.com/twiced-technology-gmbh/todowatch/internal/tui"
	"github.com/twiced-technology-gmbh/todowatch/internal/watcher"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [directories...]",
	Short: "Live dashboard of TODOs grouped by urgency",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return clierr.New(clierr.InvalidInput, "tui requires a terminal (use 'scan' for scripted output)")
	}

	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	model := tui.NewDashboard(func() []output.Item {
		items, _ := collectItems(cfg.Directories, time.Now())
		return items
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Push a refresh into the program whenever a markdown file changes.
	w, err := watcher.New(cfg.Directories, func() {
		p.Send(tui.RefreshMsg{})
	})
	if err == nil {
		defer w.Close() //nolint:errcheck // watcher close on exit
		go w.Run(ctx, nil)
	}

	_, err = p.Run()
	return err
}
