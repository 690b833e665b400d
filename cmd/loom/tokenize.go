package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loom/internal/diagfmt"
	"loom/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lm",
	Short: "Tokenize a Loom source file",
	Long:  `Tokenize breaks a Loom source file down into its constituent tokens.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath, err := resolveEntryFile(args[0])
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr), Context: 2}
		diagfmt.Pretty(os.Stderr, result.Bag, result.SourceManager, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.SourceManager)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.SourceManager)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
