package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"loom/internal/astfmt"
	"loom/internal/diagfmt"
	"loom/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.lm|directory>",
	Short: "Parse a Loom source file or directory and print its AST",
	Long:  `Parse analyzes a Loom source file, or every *.lm file in a directory, and prints the resulting AST.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree|msgpack)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		return runParseFile(cmd, filePath, format, maxDiagnostics)
	}
	return runParseDir(cmd, filePath, format, maxDiagnostics, quiet)
}

func runParseFile(cmd *cobra.Command, filePath, format string, maxDiagnostics int) error {
	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr), Context: 2}
		diagfmt.Pretty(os.Stderr, result.Bag, result.SourceManager, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Module, result.Interner, result.SourceManager)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Module, result.Interner)
	case "tree":
		return diagfmt.FormatASTTree(os.Stdout, result.Module, result.Interner, result.SourceManager)
	case "msgpack":
		doc := astfmt.Build(filePath, result.Module, result.Interner, result.SourceManager, result.Bag)
		return astfmt.Encode(os.Stdout, doc)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runParseDir(cmd *cobra.Command, dirPath, format string, maxDiagnostics int, quiet bool) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	sm, _, results, err := driver.ParseDir(cmd.Context(), dirPath, maxDiagnostics, jobs, nil)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr), Context: 2}
	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, sm, prettyOpts)
		}
	}

	for idx, r := range results {
		if !quiet {
			fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
		}
		switch format {
		case "pretty":
			if err := diagfmt.FormatASTPretty(os.Stdout, r.Module, r.Interner, sm); err != nil {
				return err
			}
		case "tree":
			if err := diagfmt.FormatASTTree(os.Stdout, r.Module, r.Interner, sm); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.FormatASTJSON(os.Stdout, r.Module, r.Interner); err != nil {
				return err
			}
		case "msgpack":
			doc := astfmt.Build(r.Path, r.Module, r.Interner, sm, r.Bag)
			if err := astfmt.Encode(os.Stdout, doc); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		if !quiet && idx < len(results)-1 {
			fmt.Fprintln(os.Stdout)
		}
	}
	return nil
}
