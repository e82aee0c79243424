package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
}

// runBatch converts every markdown file under inputDir, writing HTML files
// under outputDir with the same relative layout. Progress and the summary
// appear only in verbose mode; a silent run that exits 0 converted
// everything.
func runBatch(ctx context.Context, inputDir, outputDir string, cfg *config.Config, verbose bool, env *Environment) int {
	files, err := discoverFiles(inputDir, outputDir)
	if err != nil {
		printError(env.Stderr, fmt.Errorf("discovering files: %w", err))
		return exitError
	}
	if len(files) == 0 {
		printError(env.Stderr, fmt.Errorf("%w in %s", ErrNoFiles, inputDir))
		return exitError
	}

	workers := resolveWorkers(cfg.Batch.Workers, len(files))

	// One converter per worker, built up front so a bad engine name or an
	// unreadable stylesheet fails once instead of once per file.
	convs := make([]*md2html.Converter, workers)
	for i := range convs {
		conv, err := newConverter(cfg)
		if err != nil {
			printError(env.Stderr, err)
			return exitError
		}
		convs[i] = conv
	}

	if verbose {
		fmt.Fprintf(env.Stderr, "converting %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := convertBatch(ctx, convs, files, cfg.Document.Title)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "Error: %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stderr, "converted %s -> %s\n", r.InputPath, r.OutputPath)
		}
	}
	if verbose {
		fmt.Fprintf(env.Stderr, "converted %d file(s), %d failed\n", len(results)-failed, failed)
	}

	if failed > 0 {
		return exitError
	}
	return exitSuccess
}

// convertBatch fans the files out over len(convs) workers. Results are
// indexed like files, so output order is stable regardless of scheduling.
func convertBatch(ctx context.Context, convs []*md2html.Converter, files []FileToConvert, title string) []ConversionResult {
	results := make([]ConversionResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < len(convs); w++ {
		wg.Add(1)
		go func(conv *md2html.Converter) {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i] = ConversionResult{InputPath: files[i].InputPath, Err: err}
					continue
				}
				results[i] = convertFile(ctx, conv, files[i], title)
			}
		}(convs[w])
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// convertFile reads, converts, and writes a single file.
func convertFile(ctx context.Context, conv *md2html.Converter, file FileToConvert, title string) ConversionResult {
	result := ConversionResult{InputPath: file.InputPath, OutputPath: file.OutputPath}

	markdown, err := os.ReadFile(file.InputPath) // #nosec G304 -- path comes from directory discovery
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return result
	}

	res, err := conv.Convert(ctx, md2html.Input{Markdown: string(markdown), Title: title})
	if err != nil {
		result.Err = err
		return result
	}

	result.Err = writeOutput(file.OutputPath, []byte(res.HTML))
	return result
}
