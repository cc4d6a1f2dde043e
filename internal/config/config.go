// Package config loads the optional .scaffold.yaml file at the project root.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project root.
const FileName = ".scaffold.yaml"

// Config holds settings for the README generator and the renamer. Zero values
// mean "use the tool's default".
type Config struct {
	Readme ReadmeConfig `yaml:"readme"`
	Rename RenameConfig `yaml:"rename"`
}

// ReadmeConfig configures README generation.
type ReadmeConfig struct {
	Output string `yaml:"output,omitempty"`
	Strict bool   `yaml:"strict,omitempty"`
}

// RenameConfig configures the template renamer.
type RenameConfig struct {
	OldImportPath string   `yaml:"old_import_path,omitempty"`
	Targets       []string `yaml:"targets,omitempty"`
}

// Load reads the configuration at path. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(err, "failed to read config file")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return &cfg, nil
}

// LoadFromRoot reads FileName from the project root.
func LoadFromRoot(root string) (*Config, error) {
	return Load(filepath.Join(root, FileName))
}

// Resolve makes path absolute against root unless it is empty, "-" or
// already absolute.
func Resolve(root, path string) string {
	if path == "" || path == "-" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
