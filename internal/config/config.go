// Package config loads the compiler's optional tau.yaml configuration:
// whether warnings are promoted to errors, how many diagnostics to keep
// before truncating the bag, which warning kinds are disabled, and a list
// of search paths. SearchPaths is loaded but no pass reads it: `use`
// resolution looks only at the scopes of the one program being compiled.
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/baleg00/tau/internal/diag"
)

// CompilerConfig is the compiler's tunable behavior, loaded from an
// optional tau.yaml in the working directory (or an explicit path).
// Zero value is the default configuration: no warnings promoted, no
// diagnostic cap, every warning kind enabled, no extra search paths.
type CompilerConfig struct {
	WarningsAsErrors bool     `yaml:"warnings_as_errors"`
	MaxDiagnostics   int      `yaml:"max_diagnostics"`
	DisabledWarnings []string `yaml:"disabled_warnings"`
	SearchPaths      []string `yaml:"search_paths"`

	// Verbose is set from the CLI's --verbose flag rather than
	// tau.yaml — it lives here anyway so every pipeline caller threads
	// one config value instead of a config plus a loose bool.
	Verbose bool `yaml:"-"`
}

// Default returns the zero-value configuration explicitly, for callers
// that want a named entry point rather than a bare struct literal.
func Default() *CompilerConfig {
	return &CompilerConfig{}
}

// Load reads and parses path as a tau.yaml document. A missing file is
// not an error — it returns Default() — since the compiler runs with
// sensible defaults when no project configuration exists.
func Load(path string) (*CompilerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WarningEnabled reports whether k (a warning kind) is enabled under
// cfg. A kind not present in DisabledWarnings is enabled by default;
// cfg == nil is the default configuration, so every warning is
// enabled.
func (cfg *CompilerConfig) WarningEnabled(k diag.Kind) bool {
	if cfg == nil {
		return true
	}
	for _, name := range cfg.DisabledWarnings {
		if name == k.String() {
			return false
		}
	}
	return true
}
