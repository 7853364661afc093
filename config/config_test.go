package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/jspan/java/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "lexical", cfg.Extract.BraceMode)
	assert.Equal(t, DefaultSeparator, cfg.Extract.Separator)
	assert.Equal(t, []string{"**/*.java"}, cfg.Scan.Includes)
	assert.True(t, cfg.Scan.Gitignore)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ValidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jspan.yaml")
	content := `
extract:
  brace_mode: raw
  constructors: true
scan:
  workers: 4
  excludes: ["**/gen/**"]
logging:
  verbosity: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "raw", cfg.Extract.BraceMode)
	assert.Equal(t, DefaultSeparator, cfg.Extract.Separator, "unset keys keep their default")
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.Equal(t, []string{"**/gen/**"}, cfg.Scan.Excludes)
	assert.Equal(t, 2, cfg.Logging.Verbosity)

	opts, err := cfg.ExtractOptions()
	require.NoError(t, err)
	assert.Equal(t, extract.Options{Mode: extract.Raw, Constructors: true}, opts)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "extract: [unclosed"},
		{"bad brace mode", "extract:\n  brace_mode: fuzzy\n"},
		{"negative workers", "scan:\n  workers: -1\n"},
		{"negative verbosity", "logging:\n  verbosity: -1\n"},
		{"empty separator", "extract:\n  separator: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	cfg := DefaultConfig()
	cfg.Extract.Constructors = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
