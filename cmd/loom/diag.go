package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"loom/internal/diag"
	"loom/internal/diagfmt"
	"loom/internal/driver"
	"loom/internal/source"
)

var errDiagnosedErrors = errors.New("diagnostics contained errors")

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.lm|directory>",
	Short: "Report tokenization and parsing diagnostics",
	Long:  `Diag runs the lexer and parser over a Loom source file or directory and prints only the diagnostics they collect.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiag,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	diagCmd.Flags().Bool("with-notes", true, "include diagnostic notes in JSON output")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runDiag(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Parse(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if err := emitDiagnostics(cmd, format, withNotes, result.Bag, result.SourceManager); err != nil {
			return err
		}
		if result.Bag.HasErrors() {
			return errDiagnosedErrors
		}
		return nil
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	sm, _, results, err := driver.ParseDir(cmd.Context(), filePath, maxDiagnostics, jobs, nil)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	hadErrors := false
	for _, r := range results {
		if r.Bag.HasErrors() {
			hadErrors = true
		}
		if err := emitDiagnostics(cmd, format, withNotes, r.Bag, sm); err != nil {
			return err
		}
	}
	if hadErrors {
		return errDiagnosedErrors
	}
	return nil
}

func emitDiagnostics(cmd *cobra.Command, format string, withNotes bool, bag *diag.Bag, sm *source.SourceManager) error {
	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stdout), Context: 2}
		diagfmt.Pretty(cmd.OutOrStdout(), bag, sm, opts)
		return nil
	case "json":
		return diagfmt.FormatDiagnosticsJSON(cmd.OutOrStdout(), bag, sm, diagfmt.JSONOpts{IncludeNotes: withNotes})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
