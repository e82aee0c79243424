package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles walks inputDir and pairs every markdown file with its HTML
// output path under outputDir, mirroring the directory layout. Hidden
// directories are skipped. WalkDir visits entries in lexical order, so the
// result is deterministic.
func discoverFiles(inputDir, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: htmlOutputPath(path, inputDir, outputDir),
		})
		return nil
	})
	return files, err
}

// htmlOutputPath maps a discovered markdown path to its output path,
// preserving the directory structure relative to inputDir.
func htmlOutputPath(inputPath, inputDir, outputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	rel, err := filepath.Rel(inputDir, inputPath)
	if err != nil {
		return filepath.Join(outputDir, base+".html")
	}
	return filepath.Join(outputDir, filepath.Dir(rel), base+".html")
}
