package md2html

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.HTMLConverter  = (*pipeline.LineEngine)(nil)
	_ pipeline.HTMLConverter  = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.InlineRewriter = (*pipeline.DirectiveRewriter)(nil)
)

// Converter orchestrates the markdown-to-HTML conversion pipeline.
// Create with NewConverter and use Convert for conversion. Converters are
// cheap to build; for concurrent batch work, give each worker its own.
type Converter struct {
	cfg    converterConfig
	engine pipeline.HTMLConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithEngine, WithStandalone).
// Returns ErrUnknownEngine if an unrecognized engine is selected.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{engine: EngineLines},
	}

	for _, opt := range opts {
		opt(c)
	}

	switch c.cfg.engine {
	case EngineLines:
		c.engine = pipeline.NewLineEngine()
	case EngineGFM:
		c.engine = pipeline.NewGoldmarkConverter()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, c.cfg.engine)
	}

	return c, nil
}

// Convert runs the conversion pipeline and returns the result.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(input.Markdown) > MaxMarkdownSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrMarkdownTooLarge, len(input.Markdown), MaxMarkdownSize)
	}

	markdown := input.Markdown

	// Split front matter (if enabled) before conversion
	var matter *FrontMatter
	if c.cfg.frontMatter {
		m, body, err := pipeline.SplitFrontMatter(markdown)
		if err != nil {
			return nil, err
		}
		matter = toFrontMatter(m)
		markdown = body
	}

	htmlContent, err := c.engine.ToHTML(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	res := &Result{
		HTML:   htmlContent,
		Matter: matter,
	}

	// Wrap in a full document (if standalone)
	if c.cfg.standalone {
		title := c.resolveTitle(input, matter, markdown)
		res.HTML = pipeline.WrapDocument(htmlContent, title, c.cfg.css)
		res.Title = title
	}

	return res, nil
}

// resolveTitle picks the standalone document title. Precedence: Input.Title,
// front matter title, first level-one heading, WithTitle fallback, "Document".
// The heading scan runs on the body so YAML comments never match.
func (c *Converter) resolveTitle(input Input, matter *FrontMatter, markdown string) string {
	if input.Title != "" {
		return input.Title
	}
	if matter != nil && matter.Title != "" {
		return matter.Title
	}
	if h := pipeline.ExtractFirstHeading(markdown); h != "" {
		return h
	}
	if c.cfg.title != "" {
		return c.cfg.title
	}
	return pipeline.DefaultTitle
}

// toFrontMatter converts the internal pipeline.Matter to the public FrontMatter.
func toFrontMatter(m *pipeline.Matter) *FrontMatter {
	if m == nil {
		return nil
	}
	return &FrontMatter{
		Title:       m.Title,
		Author:      m.Author,
		Description: m.Description,
		Tags:        m.Tags,
	}
}
