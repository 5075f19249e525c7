package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats"
)

// Config controls a corpus scan. It can be loaded from YAML; every field
// must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Workers int           `yaml:"workers"`
	Timeout time.Duration `yaml:"timeout"`
	Isolate bool          `yaml:"isolate"`

	// Formats maps a base-name glob ("*.cfg.bak") to a format name. Overrides
	// are tried in sorted pattern order before the registry's own names.
	Formats map[string]string `yaml:"formats"`

	// Exclude holds globs matched against the slash-separated path relative
	// to the scan root and against the base name.
	Exclude []string `yaml:"exclude"`

	// Command is the child process prefix for isolate mode; the harness
	// appends "parse --format NAME --report-json FILE". Defaults to the
	// running executable.
	Command []string `yaml:"-"`
}

// DefaultConfig returns one worker per CPU and a ten second per-file timeout.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Timeout: 10 * time.Second,
	}
}

// LoadConfig reads a YAML scan config on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading scan config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing scan config: %w", err)
	}
	return cfg, nil
}

// Validate checks worker count, timeout, override format names and glob
// syntax. Every problem is reported, not just the first.
func (c *Config) Validate() error {
	var err error
	if c.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.Timeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	for pattern, name := range c.Formats {
		if _, perr := filepath.Match(pattern, ""); perr != nil {
			err = multierr.Append(err, fmt.Errorf("format override %q: %w", pattern, perr))
		}
		if !formats.IsValidFormat(name) {
			err = multierr.Append(err, fmt.Errorf("format override %q: unknown format %q (valid: %v)", pattern, name, formats.ValidFormatNames()))
		}
	}
	for _, pattern := range c.Exclude {
		if _, perr := filepath.Match(pattern, ""); perr != nil {
			err = multierr.Append(err, fmt.Errorf("exclude %q: %w", pattern, perr))
		}
	}
	return err
}

// formatFor picks the format of a file, honoring overrides first.
func (c *Config) formatFor(base string) (formats.Format, bool) {
	patterns := make([]string, 0, len(c.Formats))
	for p := range c.Formats {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, base); ok {
			return formats.Lookup(c.Formats[p])
		}
	}
	return formats.Detect(base)
}

func (c *Config) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, p := range c.Exclude {
		if ok, _ := filepath.Match(p, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}
