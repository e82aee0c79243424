package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and old-Mac line endings for normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// LineEngine converts Markdown to HTML line by line using the constrained
// dialect: # headings, flat "- "/"* " lists, paragraphs joined with <br />,
// **bold** and __emphasis__ spans, and the [[digest]] and ((elision))
// directives. Output is a bare sequence of block fragments, one per output
// line, each newline terminated. No <html>/<body> wrapper is added.
type LineEngine struct {
	rewriter InlineRewriter
}

// NewLineEngine creates a LineEngine with the standard directive rewriter.
func NewLineEngine() *LineEngine {
	return &LineEngine{rewriter: &DirectiveRewriter{}}
}

// ToHTML converts Markdown content to an HTML fragment sequence.
// Each line is rewritten and classified (heading first, then list), and the
// classified sequence is assembled into paragraphs. A list still open after
// the last line is closed with its own final output line. Empty input
// produces empty output. State is per call; concurrent use is safe.
func (e *LineEngine) ToHTML(ctx context.Context, content string) (string, error) {
	// Pure CPU pass, so a single check before starting is enough.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lines := strings.Split(normalizeLineEndings(content), "\n")
	var tracker listTracker
	classified := make([]string, 0, len(lines))
	for _, line := range lines {
		line = e.rewriter.RewriteInline(line)
		classified = append(classified, tracker.track(convertHeading(line)))
	}

	html := assembleParagraphs(classified)
	if closing := tracker.close(); closing != "" {
		html = append(html, closing)
	}
	if len(html) == 0 {
		return "", nil
	}
	return strings.Join(html, "\n") + "\n", nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
