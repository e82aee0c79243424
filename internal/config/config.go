package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength = 200  // Document title
	MaxPathLength  = 2048 // Directory and stylesheet paths
)

// Engine names accepted by convert.engine.
const (
	EngineLines = "lines"
	EngineGFM   = "gfm"
)

// Config holds all configuration for HTML generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Convert  ConvertConfig  `yaml:"convert"`
	Document DocumentConfig `yaml:"document"`
	Batch    BatchConfig    `yaml:"batch"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// ConvertConfig defines conversion engine options.
type ConvertConfig struct {
	Engine      string `yaml:"engine"`      // "lines" or "gfm" (empty = "lines")
	FrontMatter bool   `yaml:"frontMatter"` // Parse and strip YAML front matter
}

// DocumentConfig defines standalone document options.
type DocumentConfig struct {
	Standalone bool   `yaml:"standalone"` // Wrap fragments in a full HTML document
	Title      string `yaml:"title"`      // Document title (empty = derived from content)
	CSS        string `yaml:"css"`        // Stylesheet file to inject (implies standalone)
}

// BatchConfig defines directory conversion options.
type BatchConfig struct {
	Workers int `yaml:"workers"` // Concurrent conversions (0 = number of CPUs)
}

// Validate checks field values and lengths to prevent abuse in multi-tenant
// scenarios. Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.css", c.Document.CSS, MaxPathLength); err != nil {
		return err
	}

	switch c.Convert.Engine {
	case "", EngineLines, EngineGFM:
		// valid
	default:
		return fmt.Errorf("convert.engine: invalid value %q (must be %s or %s)",
			c.Convert.Engine, EngineLines, EngineGFM)
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers: must be >= 0, got %d", c.Batch.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{DefaultDir: ""},
		Output:   OutputConfig{DefaultDir: ""},
		Convert:  ConvertConfig{Engine: "", FrontMatter: false},
		Document: DocumentConfig{Standalone: false, Title: "", CSS: ""},
		Batch:    BatchConfig{Workers: 0},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations LoadConfig checks for a config name,
// in search order. Exposed so callers can build not-found error hints.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2html/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2html", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
