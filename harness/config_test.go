package harness

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	// GIVEN a scan config that sets some fields
	path := filepath.Join(t.TempDir(), "scan.yaml")
	writeFile(t, path, `
workers: 3
timeout: 2s
isolate: true
formats:
  "*.cfg.bak": extensions
exclude:
  - "old/*"
`)

	// WHEN it is loaded
	cfg, err := LoadConfig(path)

	// THEN listed fields replace the defaults
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.True(t, cfg.Isolate)
	assert.Equal(t, map[string]string{"*.cfg.bak": "extensions"}, cfg.Formats)
	assert.Equal(t, []string{"old/*"}, cfg.Exclude)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_KeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.yaml")
	writeFile(t, path, "isolate: false\n")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_RejectsUnknownFields(t *testing.T) {
	// GIVEN a typo in a field name
	path := filepath.Join(t.TempDir(), "scan.yaml")
	writeFile(t, path, "worker: 3\n")

	_, err := LoadConfig(path)

	assert.ErrorContains(t, err, "worker")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorContains(t, err, "reading scan config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout"},
		{"unknown override format", func(c *Config) { c.Formats = map[string]string{"*.x": "route"} }, "unknown format"},
		{"bad override glob", func(c *Config) { c.Formats = map[string]string{"[": "ats"} }, "format override"},
		{"bad exclude glob", func(c *Config) { c.Exclude = []string{"["} }, "exclude"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	// GIVEN a config with three independent problems
	cfg := DefaultConfig()
	cfg.Workers = 0
	cfg.Timeout = -time.Second
	cfg.Exclude = []string{"["}

	// WHEN validated
	err := cfg.Validate()

	// THEN each problem is listed
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorContains(t, err, "workers")
	assert.ErrorContains(t, err, "timeout")
	assert.ErrorContains(t, err, "exclude")
}

func TestConfig_FormatFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Formats = map[string]string{"*.dat": "ats"}

	// THEN overrides win over registry names
	f, ok := cfg.formatFor("train.dat")
	require.True(t, ok)
	assert.Equal(t, "ats", f.Name)

	f, ok = cfg.formatFor("sound.cfg")
	require.True(t, ok)
	assert.Equal(t, "sound", f.Name)

	_, ok = cfg.formatFor("notes.txt")
	assert.False(t, ok)
}
