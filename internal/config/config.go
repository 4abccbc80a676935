package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vlad/classgen-go/internal/composer"
)

// Dir is the per-project directory holding config and cache files.
const Dir = ".classgen"

// Config holds all configuration for classgen.
type Config struct {
	Scaffold ScaffoldConfig `yaml:"scaffold"`
	Render   RenderConfig   `yaml:"render"`
	Output   OutputConfig   `yaml:"output"`
}

// ScaffoldConfig controls which Go files are scaffolded and how.
type ScaffoldConfig struct {
	Includes       []string `yaml:"includes"`
	Excludes       []string `yaml:"excludes"`
	RootNamespace  string   `yaml:"root_namespace"`
	ClassModifier  string   `yaml:"class_modifier"` // modifier of classes generated from structs
	NestNamespaces bool     `yaml:"nest_namespaces"`
}

// RenderConfig lists blueprint files rendered when none are given.
type RenderConfig struct {
	Blueprints []string `yaml:"blueprints"`
	Excludes   []string `yaml:"excludes"`
}

// OutputConfig holds output configuration.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Workers int    `yaml:"workers"`
	Cache   bool   `yaml:"cache"` // skip files whose content did not change
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scaffold: ScaffoldConfig{
			Includes:      []string{"**/*.go"},
			Excludes:      []string{"**/*_test.go", "**/vendor/**", "**/testdata/**", "**/.git/**"},
			ClassModifier: "partial",
		},
		Render: RenderConfig{
			Blueprints: []string{"**/*.classgen.yaml"},
			Excludes:   []string{"**/.git/**", "**/" + Dir + "/**"},
		},
		Output: OutputConfig{
			Dir:     "generated",
			Workers: 4,
			Cache:   true,
		},
	}
}

// ComposerOptions maps the scaffold settings onto composer options.
func (c *Config) ComposerOptions() []composer.Option {
	return []composer.Option{
		composer.WithRootNamespace(c.Scaffold.RootNamespace),
		composer.WithClassModifier(c.Scaffold.ClassModifier),
		composer.WithNestedNamespaces(c.Scaffold.NestNamespaces),
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for classgen.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "classgen.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, Dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDBPath returns the path to the output cache database.
func CacheDBPath(dir string) string {
	return filepath.Join(dir, Dir, "cache.db")
}

// EnsureDir ensures the .classgen directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, Dir), 0755)
}
