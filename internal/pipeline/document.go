package pipeline

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// documentTemplate wraps a fragment in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// DefaultTitle is the standalone document title when no explicit title,
// front matter title, or first heading is available.
const DefaultTitle = "Document"

// firstHeadingPattern captures the text of the first level-one heading.
// Horizontal whitespace only, so a bare "#" line never captures the line below.
var firstHeadingPattern = regexp.MustCompile(`(?m)^#[ \t]+(.+)$`)

// WrapDocument wraps an HTML fragment in a complete HTML5 document with the
// given title. The title is HTML-escaped. When css is non-empty it is
// embedded as a sanitized <style> block in the document head.
func WrapDocument(fragment, title, css string) string {
	doc := fmt.Sprintf(documentTemplate, html.EscapeString(title), fragment)
	return injectCSS(doc, css)
}

// injectCSS inserts a <style> block into HTML content.
// Tries before </head> first, then after <body>, then prepends.
func injectCSS(htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could close a <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// ExtractFirstHeading returns the text of the first level-one heading in
// the Markdown source, or "" when there is none. Used as the standalone
// title fallback.
func ExtractFirstHeading(markdown string) string {
	m := firstHeadingPattern.FindStringSubmatch(markdown)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
