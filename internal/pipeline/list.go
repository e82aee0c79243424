package pipeline

import "strings"

// ListType identifies the HTML list element kept open by the tracker.
// The values double as the tag names.
type ListType string

// List types.
const (
	ListNone      ListType = ""
	ListUnordered ListType = "ul"
	ListOrdered   ListType = "ol"
)

// listTracker decides whether each line extends, starts, or closes a list
// block. State is scoped to one conversion; the zero value is ready to use.
type listTracker struct {
	current ListType
}

// markerType returns the list type selected by the line's marker, or
// ListNone. "- " opens an unordered list, "* " an ordered one.
func markerType(line string) ListType {
	switch {
	case strings.HasPrefix(line, "- "):
		return ListUnordered
	case strings.HasPrefix(line, "* "):
		return ListOrdered
	default:
		return ListNone
	}
}

// track classifies one line against the current state and returns the line
// to emit. A marker line opens a list (open tag and first item share one
// output line) or extends the open one; the open type is kept even when the
// marker character changes mid-list. A non-marker line while a list is open
// emits the closing tag concatenated with the line itself, e.g. "</ul>text".
func (t *listTracker) track(line string) string {
	marker := markerType(line)
	switch {
	case marker != ListNone && t.current == ListNone:
		t.current = marker
		return "<" + string(marker) + ">\n<li>" + itemText(line) + "</li>"
	case marker != ListNone:
		return "<li>" + itemText(line) + "</li>"
	case t.current != ListNone:
		closing := "</" + string(t.current) + ">"
		t.current = ListNone
		return closing + line
	default:
		return line
	}
}

// close returns the closing tag for a list left open at end of input, or ""
// when none is open. Every opened list closes exactly once: either track
// closed it on a non-marker line, or the engine appends this tag as the
// final output line.
func (t *listTracker) close() string {
	if t.current == ListNone {
		return ""
	}
	closing := "</" + string(t.current) + ">"
	t.current = ListNone
	return closing
}

// itemText strips the two-character marker and surrounding whitespace.
func itemText(line string) string {
	return strings.TrimSpace(line[2:])
}
