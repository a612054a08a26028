package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins).
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a configuration loader rooted at the given directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// Load loads configuration with the following priority (highest to lowest):
//  1. Environment variables (TAXON_*)
//  2. Config file (.taxon/config.yml or .taxon/config.yaml)
//  3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".taxon")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Environment variable overrides, e.g. TAXON_OUTPUT_FORMAT.
	v.SetEnvPrefix("TAXON")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("output.format")
	v.BindEnv("output.method_list_cap")
	v.BindEnv("doc.max_lines")
	v.BindEnv("cache.size")
	v.BindEnv("export.path")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is acceptable; defaults plus env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.method_list_cap", def.Output.MethodListCap)
	v.SetDefault("doc.max_lines", def.Doc.MaxLines)
	v.SetDefault("cache.size", def.Cache.Size)
	v.SetDefault("export.path", def.Export.Path)
}
