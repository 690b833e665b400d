package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loom/internal/config"
	"loom/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Loom source front end",
	Long:  `Loom tokenizes and parses Loom source files and reports their diagnostics.`,
}

// main wires the loom CLI's subcommands and persistent flags together and
// runs the selected one. Any RunE error exits the process with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command, out *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}

// resolveEntryFile turns a path argument that names a directory into the
// concrete file a single-file operation should read: the [run].entry named
// by that directory's loom.toml. A path that is already a file is returned
// unchanged.
func resolveEntryFile(path string) (string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		return path, nil
	}
	manifest, ok, err := config.Load(path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s is a directory with no loom.toml to resolve an entry file from", path)
	}
	entry := manifest.EntryPath()
	if entry == "" {
		return "", fmt.Errorf("%s has no [run].entry", manifest.Path)
	}
	return entry, nil
}
