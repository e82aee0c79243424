package pipeline

import (
	"crypto/md5" // #nosec G501 -- digest directive output must be MD5
	"fmt"
	"regexp"
	"strings"
)

// Precompiled inline rewrite patterns. All four are non-greedy, so the
// shortest span between delimiters wins and unbalanced delimiters stay
// literal text.
var (
	digestPattern   = regexp.MustCompile(`\[\[(.*?)\]\]`)
	elisionPattern  = regexp.MustCompile(`\(\((.*?)\)\)`)
	boldPattern     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emphasisPattern = regexp.MustCompile(`__(.*?)__`)
)

// InlineRewriter defines the contract for inline span rewriting within a
// single line.
type InlineRewriter interface {
	RewriteInline(line string) string
}

// DirectiveRewriter applies the digest, elision, bold, and emphasis rules.
type DirectiveRewriter struct{}

// Compile-time interface check
var _ InlineRewriter = (*DirectiveRewriter)(nil)

// RewriteInline rewrites all inline spans in one line. The rules run in a
// fixed order so later rules never re-match text produced by earlier ones:
// digests before elisions, both before the bold and emphasis spans.
func (r *DirectiveRewriter) RewriteInline(line string) string {
	line = convertDigests(line)
	line = convertElisions(line)
	line = convertBold(line)
	return convertEmphasis(line)
}

// convertDigests replaces each [[content]] span with the lowercase hex MD5
// digest of content.
func convertDigests(line string) string {
	return digestPattern.ReplaceAllStringFunc(line, func(m string) string {
		return fmt.Sprintf("%x", md5.Sum([]byte(m[2:len(m)-2]))) // #nosec G401 -- not a security control
	})
}

// convertElisions replaces each ((content)) span with content minus every
// "c" and "C". Deletion only, no case folding; other characters untouched.
// Runs after convertDigests, so digests landing inside a span lose their
// "c" characters too.
func convertElisions(line string) string {
	return elisionPattern.ReplaceAllStringFunc(line, func(m string) string {
		inner := strings.ReplaceAll(m[2:len(m)-2], "c", "")
		return strings.ReplaceAll(inner, "C", "")
	})
}

// convertBold rewrites **text** spans to <b> elements.
func convertBold(line string) string {
	return boldPattern.ReplaceAllString(line, "<b>$1</b>")
}

// convertEmphasis rewrites __text__ spans to <em> elements.
func convertEmphasis(line string) string {
	return emphasisPattern.ReplaceAllString(line, "<em>$1</em>")
}
