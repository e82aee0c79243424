package main

import (
	"fmt"
	"io"
)

// printUsage prints the full help message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <input> <output>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file, or a directory to convert recursively")
	fmt.Fprintln(w, "  output    HTML file, or the output directory for directory input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "      --engine <s>        Engine: lines (default), gfm")
	fmt.Fprintln(w, "      --front-matter      Parse and strip YAML front matter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --standalone        Wrap output in a full HTML document")
	fmt.Fprintln(w, "      --css <path>        Stylesheet for standalone output (implies --standalone)")
	fmt.Fprintln(w, "      --title <s>         Document title (\"\" = auto from first heading)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Batch:")
	fmt.Fprintln(w, "      --workers <n>       Parallel workers for directory input (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --verbose           Progress and summary on stderr")
	fmt.Fprintln(w, "      --version           Print version and exit")
	fmt.Fprintln(w, "  -h, --help              Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: MD2HTML_CONFIG, MD2HTML_ENGINE, MD2HTML_STANDALONE,")
	fmt.Fprintln(w, "MD2HTML_CSS, MD2HTML_FRONT_MATTER, MD2HTML_WORKERS, MD2HTML_VERBOSE.")
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
}
