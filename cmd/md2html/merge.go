package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2html/internal/config"
)

// mergeFlags merges CLI flags into config. A flag wins only when it was set
// on the command line, so an explicit --engine lines still beats
// MD2HTML_ENGINE=gfm while an untouched flag leaves the config alone.
func mergeFlags(flags *cliFlags, fs *flag.FlagSet, cfg *config.Config) {
	if fs.Changed("engine") {
		cfg.Convert.Engine = flags.engine
	}
	if fs.Changed("standalone") {
		cfg.Document.Standalone = flags.standalone
	}
	if fs.Changed("css") {
		cfg.Document.CSS = flags.css
	}
	if fs.Changed("title") {
		cfg.Document.Title = flags.title
	}
	if fs.Changed("front-matter") {
		cfg.Convert.FrontMatter = flags.frontMatter
	}
	if fs.Changed("workers") {
		cfg.Batch.Workers = flags.workers
	}

	// A stylesheet is only usable inside a document shell.
	if cfg.Document.CSS != "" {
		cfg.Document.Standalone = true
	}
}

// resolveConfig loads the config file (if one was named) and layers the
// override sources on top: CLI flag > environment > config file > default.
func resolveConfig(configName string, flags *cliFlags, fs *flag.FlagSet, envCfg *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, fs, cfg)

	return cfg, nil
}
