package main

import (
	"io"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag registration and positional handling
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags parse", func(t *testing.T) {
		t.Parallel()

		args := []string{
			"--engine", "gfm",
			"--standalone",
			"--css", "style.css",
			"--title", "My Title",
			"--front-matter",
			"--workers", "4",
			"--config", "prod",
			"--verbose",
			"in.md", "out.html",
		}

		flags, fs, err := parseFlags(args, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}

		if flags.engine != "gfm" {
			t.Errorf("engine = %q, want %q", flags.engine, "gfm")
		}
		if !flags.standalone || !flags.frontMatter || !flags.verbose {
			t.Errorf("bool flags not set: %+v", flags)
		}
		if flags.css != "style.css" {
			t.Errorf("css = %q, want %q", flags.css, "style.css")
		}
		if flags.title != "My Title" {
			t.Errorf("title = %q, want %q", flags.title, "My Title")
		}
		if flags.workers != 4 {
			t.Errorf("workers = %d, want 4", flags.workers)
		}
		if flags.config != "prod" {
			t.Errorf("config = %q, want %q", flags.config, "prod")
		}

		positionals := fs.Args()
		if len(positionals) != 2 || positionals[0] != "in.md" || positionals[1] != "out.html" {
			t.Errorf("Args() = %v, want [in.md out.html]", positionals)
		}
	})

	t.Run("flags after positionals are interspersed", func(t *testing.T) {
		t.Parallel()

		flags, fs, err := parseFlags([]string{"in.md", "out.html", "--verbose"}, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if !flags.verbose {
			t.Error("verbose should be set from trailing flag")
		}
		if len(fs.Args()) != 2 {
			t.Errorf("Args() = %v, want 2 positionals", fs.Args())
		}
	})

	t.Run("unknown flag errors", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseFlags([]string{"--bogus"}, io.Discard)
		if err == nil {
			t.Fatal("parseFlags() should fail for unknown flag")
		}
	})

	t.Run("help shorthand", func(t *testing.T) {
		t.Parallel()

		flags, _, err := parseFlags([]string{"-h"}, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if !flags.help {
			t.Error("help should be set by -h")
		}
	})

	t.Run("changed tracks explicit zero values", func(t *testing.T) {
		t.Parallel()

		_, fs, err := parseFlags([]string{"--workers=0", "--standalone=false"}, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if !fs.Changed("workers") {
			t.Error("Changed(workers) should be true for --workers=0")
		}
		if !fs.Changed("standalone") {
			t.Error("Changed(standalone) should be true for --standalone=false")
		}
		if fs.Changed("engine") {
			t.Error("Changed(engine) should be false when unset")
		}
	})
}
