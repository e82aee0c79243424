package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for a conversion run.
type cliFlags struct {
	engine      string
	standalone  bool
	css         string
	title       string
	frontMatter bool
	workers     int
	config      string
	verbose     bool
	version     bool
	help        bool
}

// addConvertFlags adds conversion flags to a FlagSet.
func addConvertFlags(fs *flag.FlagSet, f *cliFlags) {
	fs.StringVar(&f.engine, "engine", "", "conversion engine: lines, gfm")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a full HTML document")
	fs.StringVar(&f.css, "css", "", "stylesheet file for standalone output (implies --standalone)")
	fs.StringVar(&f.title, "title", "", "document title for standalone output (\"\" = auto from first heading)")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "parse and strip YAML front matter")
	fs.IntVar(&f.workers, "workers", 0, "parallel workers for directory input (0 = auto)")
}

// addCommonFlags adds flags shared by every run mode.
func addCommonFlags(fs *flag.FlagSet, f *cliFlags) {
	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.BoolVar(&f.verbose, "verbose", false, "progress and summary on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
}

// parseFlags parses args and returns the flags plus the FlagSet. The FlagSet
// is needed later: mergeFlags asks it which flags were set explicitly, and
// positional arguments come from fs.Args().
func parseFlags(args []string, stderr io.Writer) (*cliFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &cliFlags{}

	addConvertFlags(fs, f)
	addCommonFlags(fs, f)

	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}
