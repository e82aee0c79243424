package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrUnknownEngine    = errors.New("unknown conversion engine")
	ErrMarkdownTooLarge = errors.New("markdown input too large")

	// ErrFrontMatter reports malformed YAML front matter. It aliases the
	// pipeline sentinel so errors.Is matches across the package boundary.
	ErrFrontMatter = pipeline.ErrFrontMatter

	// ErrHTMLConversion reports an engine failure. Aliased for the same
	// reason as ErrFrontMatter.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)
