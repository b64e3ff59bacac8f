package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/todowatch/internal/date"
	"github.com/twiced-technology-gmbh/todowatch/internal/output"
	"github.com/twiced-technology-gmbh/todowatch/internal/scan"
	"github.com/twiced-technology-gmbh/todowatch/internal/todo"
	"github.com/twiced-technology-gmbh/todowatch/internal/urgency"
)

var scanCmd = &cobra.Command{
	Use:   "scan [directories...]",
	Short: "Scan once and print classified TODOs",
	Long: `Runs a single locate-extract-classify pass and prints the result.
No notifications are sent and nothing is synced to the tracker.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	items, warnings := collectItems(cfg.Directories, time.Now())
	printWarnings(warnings)

	format := outputFormat()
	if format == output.FormatJSON {
		if items == nil {
			items = []output.Item{}
		}
		return output.JSON(os.Stdout, items)
	}
	if format == output.FormatCompact {
		output.Compact(os.Stdout, items)
		return nil
	}

	output.Table(os.Stdout, items)
	return nil
}

// collectItems runs the locate-extract-classify pipeline for display.
// Unreadable documents and malformed dates become warnings; the affected
// records are dropped, everything else goes through.
func collectItems(roots []string, now time.Time) ([]output.Item, []string) {
	var items []output.Item
	var warnings []string

	for _, file := range scan.FindMarkdownFiles(roots) {
		todos, err := todo.ParseFile(file)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		for _, t := range todos {
			due, err := date.Parse(t.Due)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: %v", t.Source(), err))
				continue
			}
			items = append(items, output.Item{Todo: t, Urgency: urgency.Classify(due, now)})
		}
	}

	return items, warnings
}

// printWarnings writes scan warnings to stderr.
func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}
