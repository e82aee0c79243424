package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// usageLine is the historical usage message, preserved byte for byte so
// scripts that match on it keep working.
const usageLine = "Usage: ./markdown2html.py README.md README.html"

// Exit codes. Success is 0 and every failure is 1, with diagnostics on
// stderr; scripts built around the original tool rely on exactly these two.
const (
	exitSuccess = 0
	exitError   = 1
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for CLI operations.
var (
	ErrReadCSS      = errors.New("failed to read CSS file")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output file")
	ErrNoFiles      = errors.New("no markdown files found")
)

// runMain parses flags, resolves configuration, and dispatches to single-file
// or directory conversion. It returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, fs, err := parseFlags(args, env.Stderr)
	if err != nil {
		// pflag already printed the diagnostic and usage to env.Stderr.
		return exitError
	}

	if flags.help {
		printUsage(env.Stdout)
		return exitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return exitSuccess
	}

	envCfg := loadEnvConfig(env.Getenv)
	verbose := flags.verbose || envCfg.Verbose
	if verbose {
		warnUnknownEnvVars(env.Stderr)
	}

	positionals := fs.Args()
	if len(positionals) < 2 {
		fmt.Fprintln(env.Stderr, usageLine)
		return exitError
	}
	// Arguments beyond the first two are accepted and ignored, as the
	// original tool did.
	inputArg, outputArg := positionals[0], positionals[1]

	configName := flags.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg, err := resolveConfig(configName, flags, fs, envCfg)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, configHint(err, configName))
		return exitError
	}

	if err := validateWorkers(cfg.Batch.Workers); err != nil {
		printError(env.Stderr, err)
		return exitError
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	inputPath := resolveInputPath(inputArg, cfg)
	outputPath := resolveOutputPath(outputArg, cfg)

	if fileutil.DirExists(inputPath) {
		return runBatch(ctx, inputPath, outputPath, cfg, verbose, env)
	}
	return runSingle(ctx, inputPath, inputArg, outputPath, cfg, env)
}

// runSingle converts one markdown file to one HTML file.
// inputArg is the path as the user typed it; the "Missing" diagnostic
// reports that form regardless of input.defaultDir resolution.
func runSingle(ctx context.Context, inputPath, inputArg, outputPath string, cfg *config.Config, env *Environment) int {
	markdown, err := os.ReadFile(inputPath) // #nosec G304 -- path is user-provided by design
	if err != nil {
		fmt.Fprintf(env.Stderr, "Missing %s\n", inputArg)
		return exitError
	}

	conv, err := newConverter(cfg)
	if err != nil {
		printError(env.Stderr, err)
		return exitError
	}

	res, err := conv.Convert(ctx, md2html.Input{
		Markdown: string(markdown),
		Title:    cfg.Document.Title,
	})
	if err != nil {
		printError(env.Stderr, err)
		return exitError
	}

	if err := writeOutput(outputPath, []byte(res.HTML)); err != nil {
		printError(env.Stderr, err)
		return exitError
	}

	return exitSuccess
}

// newConverter builds a Converter from merged configuration. The stylesheet
// path is read here so the library only ever sees CSS content.
func newConverter(cfg *config.Config) (*md2html.Converter, error) {
	var opts []md2html.Option
	if cfg.Convert.Engine != "" {
		opts = append(opts, md2html.WithEngine(md2html.Engine(cfg.Convert.Engine)))
	}
	if cfg.Convert.FrontMatter {
		opts = append(opts, md2html.WithFrontMatter())
	}
	if cfg.Document.Standalone {
		opts = append(opts, md2html.WithStandalone())
	}
	if cfg.Document.CSS != "" {
		css, err := os.ReadFile(cfg.Document.CSS) // #nosec G304 -- path is user-provided by design
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		opts = append(opts, md2html.WithCSS(string(css)))
	}
	return md2html.NewConverter(opts...)
}

// writeOutput writes HTML to path, creating parent directories as needed.
func writeOutput(path string, html []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(path, html, filePermissions); err != nil { // #nosec G306 -- converted HTML is not sensitive
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// resolveInputPath joins a relative input with input.defaultDir when the
// config provides one. Absolute paths are used as given.
func resolveInputPath(arg string, cfg *config.Config) string {
	if cfg.Input.DefaultDir == "" || filepath.IsAbs(arg) {
		return arg
	}
	return filepath.Join(cfg.Input.DefaultDir, arg)
}

// resolveOutputPath joins a relative output with output.defaultDir when the
// config provides one. Absolute paths are used as given.
func resolveOutputPath(arg string, cfg *config.Config) string {
	if cfg.Output.DefaultDir == "" || filepath.IsAbs(arg) {
		return arg
	}
	return filepath.Join(cfg.Output.DefaultDir, arg)
}

// printError prints an error with an optional recovery hint.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v%s\n", err, hintFor(err))
}

// hintFor returns a recovery hint for known error classes, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2html.ErrUnknownEngine):
		return hints.ForUnknownEngine([]string{config.EngineLines, config.EngineGFM})
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}

// configHint returns a recovery hint for config loading failures.
func configHint(err error, configName string) string {
	if !errors.Is(err, config.ErrConfigNotFound) {
		return ""
	}
	var searched []string
	if configName != "" && !fileutil.IsFilePath(configName) {
		searched = config.SearchPaths(configName)
	}
	return hints.ForConfigNotFound(searched)
}
