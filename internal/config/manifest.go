// Package config loads a project's loom.toml manifest, following the same
// find-upward-then-decode-with-metadata shape the teacher uses for
// surge.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// PackageConfig is the [package] table.
type PackageConfig struct {
	Name    string `toml:"name"`
	Edition string `toml:"edition"`
}

// RunConfig is the [run] table: the entry file the driver parses first.
type RunConfig struct {
	Entry string `toml:"entry"`
}

// LintConfig is the [lint] table. Every toggle defaults to enabled: a
// toggle the manifest omits (or a manifest with no [lint] table) leaves the
// pointer nil, which Config.LintEnabled treats as "use the built-in
// default" rather than "explicitly disabled".
type LintConfig struct {
	defined            bool
	TrailingWhitespace *bool `toml:"trailing_whitespace"`
	UnusedImport       *bool `toml:"unused_import"`
}

// Config is the decoded shape of loom.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Run     RunConfig     `toml:"run"`
	Lint    LintConfig    `toml:"lint"`
}

// Manifest pairs a decoded Config with the path it was loaded from and the
// directory that path lives in (the project root for relative lookups).
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

const manifestFilename = "loom.toml"

// Find walks upward from startDir looking for loom.toml, the same
// nearest-ancestor search the teacher's surge.toml lookup performs.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestFilename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load finds and decodes the nearest loom.toml above startDir. ok is false
// (with a nil error) when no manifest exists anywhere above startDir.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := decode(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

func decode(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	cfg.Lint.defined = meta.IsDefined("lint")
	return cfg, nil
}

// LintEnabled reports whether a named lint toggle is on: an explicit
// setting in [lint] wins, otherwise the built-in default (true) applies.
func (c Config) LintEnabled(name string) bool {
	var ptr *bool
	switch name {
	case "trailing_whitespace":
		ptr = c.Lint.TrailingWhitespace
	case "unused_import":
		ptr = c.Lint.UnusedImport
	}
	if ptr == nil {
		return true
	}
	return *ptr
}

// EntryPath resolves the manifest's [run].entry against Root. Empty when
// the manifest declares no entry file.
func (m *Manifest) EntryPath() string {
	entry := strings.TrimSpace(m.Config.Run.Entry)
	if entry == "" {
		return ""
	}
	return filepath.Join(m.Root, filepath.FromSlash(entry))
}
