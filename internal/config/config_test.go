package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 3, cfg.Doc.MaxLines)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad format", func(c *Config) { c.Output.Format = "yaml" }},
		{"negative method cap", func(c *Config) { c.Output.MethodListCap = -1 }},
		{"zero doc lines", func(c *Config) { c.Doc.MaxLines = 0 }},
		{"zero cache size", func(c *Config) { c.Cache.Size = 0 }},
		{"empty export path", func(c *Config) { c.Export.Path = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".taxon")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	yaml := "output:\n  format: json\n  method_list_cap: 5\ndoc:\n  max_lines: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yaml), 0o644))

	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 5, cfg.Output.MethodListCap)
	assert.Equal(t, 7, cfg.Doc.MaxLines)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Cache.Size, cfg.Cache.Size)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".taxon")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("doc:\n  max_lines: 7\n"), 0o644))

	t.Setenv("TAXON_DOC_MAX_LINES", "9")
	t.Setenv("TAXON_OUTPUT_FORMAT", "json")

	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Doc.MaxLines)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_InvalidConfigFails(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".taxon")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("output:\n  format: xml\n"), 0o644))

	_, err := NewLoader(root).Load()
	assert.Error(t, err)
}
