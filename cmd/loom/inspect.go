package main

import (
	"fmt"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"loom/internal/diagfmt"
	"loom/internal/driver"
	"loom/internal/source"
	"loom/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] <directory>",
	Short: "Parse a directory with a live progress display",
	Long:  `Inspect parses every *.lm file in a directory concurrently and shows per-file progress in a terminal UI, then prints any diagnostics collected.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	dirPath := args[0]
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	files, err := driver.ListSourceFiles(dirPath)
	if err != nil {
		return fmt.Errorf("failed to list source files: %w", err)
	}

	events := make(chan driver.Event, 64)
	program := tea.NewProgram(ui.NewProgressModel("parsing "+dirPath, files, events))

	type outcome struct {
		sm      *source.SourceManager
		results []*driver.FileParseResult
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		defer close(events)
		sm, _, results, err := driver.ParseDir(cmd.Context(), dirPath, maxDiagnostics, jobs, func(ev driver.Event) {
			events <- ev
		})
		done <- outcome{sm: sm, results: results, err: err}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("inspect UI failed: %w", err)
	}
	out := <-done
	if out.err != nil {
		return fmt.Errorf("parsing failed: %w", out.err)
	}

	opts := diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr), Context: 2}
	for _, r := range out.results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, out.sm, opts)
		}
	}
	return nil
}
