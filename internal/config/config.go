// Package config loads taxon configuration from file and environment.
package config

import "fmt"

// Config represents the complete taxon configuration. It can be loaded from
// .taxon/config.yml with environment variable overrides.
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Doc    DocConfig    `yaml:"doc" mapstructure:"doc"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Export ExportConfig `yaml:"export" mapstructure:"export"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format        string `yaml:"format" mapstructure:"format"`                   // "text" or "json"
	MethodListCap int    `yaml:"method_list_cap" mapstructure:"method_list_cap"` // max method names displayed per partition
}

// DocConfig controls documentation excerpt extraction.
type DocConfig struct {
	MaxLines int `yaml:"max_lines" mapstructure:"max_lines"` // lines kept from the first paragraph
}

// CacheConfig controls the engine's description cache.
type CacheConfig struct {
	Size int `yaml:"size" mapstructure:"size"` // LRU capacity in descriptions
}

// ExportConfig controls snapshot persistence.
type ExportConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // SQLite database path
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:        "text",
			MethodListCap: 10,
		},
		Doc: DocConfig{
			MaxLines: 3,
		},
		Cache: CacheConfig{
			Size: 256,
		},
		Export: ExportConfig{
			Path: ".taxon/snapshots.db",
		},
	}
}

// Validate checks a loaded configuration for values the engine cannot use.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be \"text\" or \"json\", got %q", cfg.Output.Format)
	}
	if cfg.Output.MethodListCap < 0 {
		return fmt.Errorf("output.method_list_cap must be non-negative, got %d", cfg.Output.MethodListCap)
	}
	if cfg.Doc.MaxLines <= 0 {
		return fmt.Errorf("doc.max_lines must be positive, got %d", cfg.Doc.MaxLines)
	}
	if cfg.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive, got %d", cfg.Cache.Size)
	}
	if cfg.Export.Path == "" {
		return fmt.Errorf("export.path must not be empty")
	}
	return nil
}
