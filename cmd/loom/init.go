package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new Loom project",
	Long: `Init creates a loom.toml manifest and a hello-world entry point
(main.lm) in the target directory. If [path|name] is omitted, initializes
the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target, err := resolveInitTarget(args)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := filepath.Base(target)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "loom-project"
	}

	manifestPath := filepath.Join(target, "loom.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(defaultManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, "main.lm")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultEntryFile()), 0o644); err != nil {
			return fmt.Errorf("failed to write entry file: %w", err)
		}
		createdMain = true
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
	if createdMain {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", mainPath)
	}
	return nil
}

func resolveInitTarget(args []string) (string, error) {
	if len(args) == 0 || args[0] == "." {
		return os.Getwd()
	}
	arg := args[0]
	if filepath.IsAbs(arg) {
		return arg, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, arg), nil
}

func defaultManifest(name string) string {
	return fmt.Sprintf(`[package]
name = %q
edition = "2026"

[run]
entry = "main.lm"

[lint]
trailing_whitespace = true
unused_import = true
`, name)
}

func defaultEntryFile() string {
	return `fn main() {
    print("hello, loom");
}
`
}
