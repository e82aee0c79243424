package md2html

// Engine selects the Markdown conversion engine.
type Engine string

// Conversion engine constants.
const (
	EngineLines Engine = "lines" // line-oriented dialect (default)
	EngineGFM   Engine = "gfm"   // CommonMark + GitHub Flavored Markdown
)

// MaxMarkdownSize limits Markdown input to prevent memory exhaustion (10MB).
const MaxMarkdownSize = 10 << 20

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (empty input converts to empty output)
	Title    string // Document title for standalone output (optional, overrides all other sources)
}

// Result contains conversion output.
type Result struct {
	HTML   string       // HTML fragment, or full document when standalone
	Title  string       // Resolved document title (empty unless standalone)
	Matter *FrontMatter // Parsed front matter, nil unless enabled and present
}

// FrontMatter holds document metadata parsed from a leading YAML block.
type FrontMatter struct {
	Title       string
	Author      string
	Description string
	Tags        []string
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine      Engine
	standalone  bool
	css         string
	title       string
	frontMatter bool
}

// WithEngine selects the conversion engine.
// NewConverter returns ErrUnknownEngine for engines it does not recognize.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithStandalone wraps converted fragments in a complete HTML5 document.
func WithStandalone() Option {
	return func(c *Converter) {
		c.cfg.standalone = true
	}
}

// WithCSS sets stylesheet content embedded in the standalone document head.
// Only used when WithStandalone is set.
func WithCSS(css string) Option {
	return func(c *Converter) {
		c.cfg.css = css
	}
}

// WithTitle sets the fallback document title for standalone output, used
// when neither Input.Title nor the document content supplies one.
func WithTitle(t string) Option {
	return func(c *Converter) {
		c.cfg.title = t
	}
}

// WithFrontMatter enables YAML front matter parsing. The leading block is
// split from the markdown before conversion and returned in Result.Matter.
func WithFrontMatter() Option {
	return func(c *Converter) {
		c.cfg.frontMatter = true
	}
}
