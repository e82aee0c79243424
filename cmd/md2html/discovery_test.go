package main

import (
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Recursive markdown discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	mustWrite := func(name string) {
		t.Helper()
		path := filepath.Join(dir, "src", name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, []byte("x\n"), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	mustWrite("a.md")
	mustWrite("b.markdown")
	mustWrite("notes.txt")
	mustWrite("sub/c.md")
	mustWrite(".hidden/d.md")

	files, err := discoverFiles(filepath.Join(dir, "src"), out)
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}

	got := make(map[string]string, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(filepath.Join(dir, "src"), f.InputPath)
		if err != nil {
			t.Fatalf("Rel() error = %v", err)
		}
		got[rel] = f.OutputPath
	}

	want := map[string]string{
		"a.md":       filepath.Join(out, "a.html"),
		"b.markdown": filepath.Join(out, "b.html"),
		"sub/c.md":   filepath.Join(out, "sub", "c.html"),
	}
	if len(got) != len(want) {
		t.Errorf("discovered %d files, want %d: %v", len(got), len(want), got)
	}
	for rel, wantOut := range want {
		if got[rel] != wantOut {
			t.Errorf("output for %s = %q, want %q", rel, got[rel], wantOut)
		}
	}
	if _, ok := got["notes.txt"]; ok {
		t.Error("non-markdown file should not be discovered")
	}
	if _, ok := got[".hidden/d.md"]; ok {
		t.Error("hidden directory should be skipped")
	}
}

func TestDiscoverFiles_Deterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"z.md", "a.md", "m.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	files, err := discoverFiles(dir, filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}

	wantOrder := []string{"a.md", "m.md", "z.md"}
	if len(files) != len(wantOrder) {
		t.Fatalf("discovered %d files, want %d", len(files), len(wantOrder))
	}
	for i, want := range wantOrder {
		if filepath.Base(files[i].InputPath) != want {
			t.Errorf("files[%d] = %s, want %s", i, filepath.Base(files[i].InputPath), want)
		}
	}
}

func TestDiscoverFiles_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := discoverFiles(filepath.Join(t.TempDir(), "nope"), "out")
	if err == nil {
		t.Fatal("discoverFiles() should fail for a missing directory")
	}
}

// ---------------------------------------------------------------------------
// TestHTMLOutputPath - Output path mirrors the input layout
// ---------------------------------------------------------------------------

func TestHTMLOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		inputPath string
		inputDir  string
		outputDir string
		want      string
	}{
		{
			name:      "top level file",
			inputPath: "src/readme.md",
			inputDir:  "src",
			outputDir: "site",
			want:      filepath.Join("site", "readme.html"),
		},
		{
			name:      "nested file keeps relative dir",
			inputPath: "src/guides/setup.md",
			inputDir:  "src",
			outputDir: "site",
			want:      filepath.Join("site", "guides", "setup.html"),
		},
		{
			name:      "markdown extension",
			inputPath: "src/notes.markdown",
			inputDir:  "src",
			outputDir: "site",
			want:      filepath.Join("site", "notes.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := htmlOutputPath(tt.inputPath, tt.inputDir, tt.outputDir)
			if got != tt.want {
				t.Errorf("htmlOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
