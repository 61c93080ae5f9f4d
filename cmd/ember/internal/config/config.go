// Package config loads the optional ember.yaml project manifest.
package config

import (
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-ember/ember/pkg/errors"
)

// Config represents the optional ember.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Engine EngineConfig `yaml:"engine"`
	// Theme is the path to a theme override file, relative to the
	// manifest.
	Theme string `yaml:"theme,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name   string `yaml:"name,omitempty"`
	Module string `yaml:"module,omitempty"`
}

// EngineConfig contains engine settings.
type EngineConfig struct {
	// Version is the minimum engine version, as a semantic version.
	Version string `yaml:"version,omitempty"`
}

// LoadOptional reads ember.yaml from dir if present. A missing manifest is
// not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "ember.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.New("config.LoadOptional", errors.KindConfig, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New("config.LoadOptional", errors.KindConfig,
			fmt.Errorf("failed to parse ember.yaml: %w", err))
	}
	return &cfg, nil
}

// Validate checks the manifest's module path and engine version
// constraint.
func (c *Config) Validate() error {
	if c.App.Module != "" {
		if err := module.CheckPath(c.App.Module); err != nil {
			return errors.New("config.Validate", errors.KindConfig,
				fmt.Errorf("invalid module path %q: %w", c.App.Module, err))
		}
	}
	if c.Engine.Version != "" {
		v := c.Engine.Version
		if v[0] != 'v' {
			v = "v" + v
		}
		if !semver.IsValid(v) {
			return errors.Newf("config.Validate", errors.KindConfig,
				"invalid engine version %q", c.Engine.Version)
		}
	}
	return nil
}
