package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // MD2HTML_CONFIG: config file name or path
	Engine      string // MD2HTML_ENGINE: lines or gfm
	CSS         string // MD2HTML_CSS: stylesheet path for standalone output
	Standalone  bool   // MD2HTML_STANDALONE: wrap output in a document shell
	FrontMatter bool   // MD2HTML_FRONT_MATTER: parse YAML front matter
	Verbose     bool   // MD2HTML_VERBOSE: progress output on stderr
	Workers     int    // MD2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":       true,
	"MD2HTML_ENGINE":       true,
	"MD2HTML_CSS":          true,
	"MD2HTML_STANDALONE":   true,
	"MD2HTML_FRONT_MATTER": true,
	"MD2HTML_VERBOSE":      true,
	"MD2HTML_WORKERS":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Boolean variables follow strconv.ParseBool syntax; they can only enable a
// feature, never disable one the config file turned on. Unparseable values
// are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2HTML_CONFIG"),
		Engine:     getenv("MD2HTML_ENGINE"),
		CSS:        getenv("MD2HTML_CSS"),
	}

	cfg.Standalone = envBool(getenv, "MD2HTML_STANDALONE")
	cfg.FrontMatter = envBool(getenv, "MD2HTML_FRONT_MATTER")
	cfg.Verbose = envBool(getenv, "MD2HTML_VERBOSE")

	if workers := getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// envBool parses a boolean environment variable, treating absent or
// malformed values as false.
func envBool(getenv func(string) string, name string) bool {
	v := getenv(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_ENGIN instead of MD2HTML_ENGINE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Environment beats the config file; CLI flags are merged afterwards and
// beat both. ConfigPath and Verbose are consumed before this point.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Engine != "" {
		cfg.Convert.Engine = env.Engine
	}
	if env.CSS != "" {
		cfg.Document.CSS = env.CSS
	}
	if env.Standalone {
		cfg.Document.Standalone = true
	}
	if env.FrontMatter {
		cfg.Convert.FrontMatter = true
	}
	if env.Workers > 0 {
		cfg.Batch.Workers = env.Workers
	}
}
