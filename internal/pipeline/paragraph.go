package pipeline

import "strings"

// Prefix sets driving paragraph assembly. Branch order in
// assembleParagraphs matters: a list-closing line like "</ul>text" is
// structural as a whole, so its trailing text never joins a paragraph.
var (
	// structuralPrefixes mark lines that close any open paragraph with an
	// explicit </p> before being emitted.
	structuralPrefixes = []string{"<h", "</ul>", "</ol>"}

	// openingPrefixes mark lines that end paragraph context without
	// emitting a closing tag.
	openingPrefixes = []string{"<ul", "<li", "<ol"}
)

// assembleParagraphs runs a single pass over the classified lines, wrapping
// plain text runs in <p> blocks. Consecutive text lines are joined with
// <br />; blank or whitespace-only lines, structural markers, and end of
// input close the open paragraph.
func assembleParagraphs(lines []string) []string {
	var inParagraph bool
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		switch {
		case hasAnyPrefix(line, structuralPrefixes):
			if inParagraph {
				out = append(out, "</p>")
				inParagraph = false
			}
			out = append(out, line)
		case hasAnyPrefix(line, openingPrefixes):
			inParagraph = false
			out = append(out, line)
		case strings.TrimSpace(line) == "":
			if inParagraph {
				out = append(out, "</p>")
				inParagraph = false
			}
		default:
			if inParagraph {
				out = append(out, "<br />")
			} else {
				out = append(out, "<p>")
				inParagraph = true
			}
			out = append(out, line)
		}
	}

	if inParagraph {
		out = append(out, "</p>")
	}
	return out
}

// hasAnyPrefix reports whether the line starts with one of the prefixes.
func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
