package pipeline

import (
	"fmt"
	"strings"
)

// convertHeading converts a leading-# run into a heading element.
// The level is the length of the leading run, used verbatim with no
// clamping ("####### t" yields <h7>). The text keeps interior # characters;
// only the # runs at both ends and surrounding whitespace are stripped.
// Lines without a leading # pass through unchanged.
func convertHeading(line string) string {
	if !strings.HasPrefix(line, "#") {
		return line
	}
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	text := strings.TrimSpace(strings.Trim(line, "#"))
	return fmt.Sprintf("<h%d>%s</h%d>", level, text, level)
}
