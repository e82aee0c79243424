package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// ErrFrontMatter indicates front matter could not be parsed.
var ErrFrontMatter = errors.New("front matter parsing failed")

// matterFormat recognizes YAML blocks delimited by "---" lines, parsed
// through the same hardened YAML wrapper the config loader uses.
var matterFormat = frontmatter.NewFormat("---", "---", unmarshalMatter)

// Matter holds the recognized YAML front matter fields.
type Matter struct {
	Title       string   `yaml:"title"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// SplitFrontMatter extracts YAML front matter from the Markdown source.
// It returns the parsed matter and the body without delimiters. When the
// source carries no front matter, the matter is nil and the body is the
// source unchanged. An opened but malformed block is an error.
func SplitFrontMatter(markdown string) (*Matter, string, error) {
	var m Matter
	rest, err := frontmatter.Parse(strings.NewReader(markdown), &m, matterFormat)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	body := string(rest)
	if len(body) == len(markdown) {
		return nil, markdown, nil
	}
	return &m, body, nil
}

// unmarshalMatter parses one front matter block. An empty block is valid
// and leaves the destination zero-valued.
func unmarshalMatter(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
}
