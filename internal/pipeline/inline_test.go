package pipeline

import (
	"crypto/md5" // #nosec G501 -- digest expectations are MD5 by contract
	"fmt"
	"strings"
	"testing"
)

// md5hex builds expected digest values without hardcoding hex strings.
func md5hex(s string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(s))) // #nosec G401 -- not a security control
}

func TestConvertDigests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "known digest",
			input:    "[[abc]]",
			expected: "900150983cd24fb0d6963f7d28e17f72",
		},
		{
			name:     "empty content digest",
			input:    "[[]]",
			expected: "d41d8cd98f00b204e9800998ecf8427e",
		},
		{
			name:     "case sensitive content",
			input:    "[[Hello]] [[hello]]",
			expected: "8b1a9953c4611296a827abf8c47804d7 5d41402abc4b2a76b9719d911017c592",
		},
		{
			name:     "digest inside surrounding text",
			input:    "before [[message digest]] after",
			expected: "before f96b697d7cb7938d525a2f31aaf161d0 after",
		},
		{
			name:     "multiple spans replaced independently",
			input:    "[[a]][[a]]",
			expected: "0cc175b9c0f1b6a831c399e269772661" + "0cc175b9c0f1b6a831c399e269772661",
		},
		{
			name:     "unclosed span left literal",
			input:    "[[abc",
			expected: "[[abc",
		},
		{
			name:     "single brackets left literal",
			input:    "[abc]",
			expected: "[abc]",
		},
		{
			name:     "no span",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertDigests(tt.input)
			if got != tt.expected {
				t.Errorf("convertDigests() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertDigestsDeterministic(t *testing.T) {
	t.Parallel()

	first := convertDigests("[[some content]]")
	second := convertDigests("[[some content]]")
	if first != second {
		t.Errorf("convertDigests() not deterministic: %q vs %q", first, second)
	}
	if len(first) != 32 {
		t.Errorf("digest length = %d, want 32", len(first))
	}
	if first != strings.ToLower(first) {
		t.Errorf("digest %q not lowercase", first)
	}
	if other := convertDigests("[[other content]]"); other == first {
		t.Errorf("differing content produced identical digest %q", first)
	}
}

func TestConvertElisions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "uppercase C removed",
			input:    "((Cool))",
			expected: "ool",
		},
		{
			name:     "mixed case removed",
			input:    "((Chicago))",
			expected: "hiago",
		},
		{
			name:     "only c and C removed",
			input:    "((Code is cool))",
			expected: "ode is ool",
		},
		{
			name:     "no c in content",
			input:    "((hello))",
			expected: "hello",
		},
		{
			name:     "multiple spans",
			input:    "((cat)) and ((Cow))",
			expected: "at and ow",
		},
		{
			name:     "empty span",
			input:    "(())",
			expected: "",
		},
		{
			name:     "unclosed span left literal",
			input:    "((cat",
			expected: "((cat",
		},
		{
			name:     "single parens left literal",
			input:    "(cat)",
			expected: "(cat)",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertElisions(tt.input)
			if got != tt.expected {
				t.Errorf("convertElisions() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertBold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single span",
			input:    "**bold**",
			expected: "<b>bold</b>",
		},
		{
			name:     "multiple spans",
			input:    "**one** and **two**",
			expected: "<b>one</b> and <b>two</b>",
		},
		{
			name:     "empty span",
			input:    "****",
			expected: "<b></b>",
		},
		{
			name:     "non-greedy shortest match",
			input:    "**a** b **c**",
			expected: "<b>a</b> b <b>c</b>",
		},
		{
			name:     "triple asterisks capture inner asterisk",
			input:    "***bold***",
			expected: "<b>*bold</b>*",
		},
		{
			name:     "unclosed left literal",
			input:    "**bold",
			expected: "**bold",
		},
		{
			name:     "single asterisks left literal",
			input:    "*italic*",
			expected: "*italic*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertBold(tt.input)
			if got != tt.expected {
				t.Errorf("convertBold() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertEmphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single span",
			input:    "__text__",
			expected: "<em>text</em>",
		},
		{
			name:     "multiple spans",
			input:    "__one__ and __two__",
			expected: "<em>one</em> and <em>two</em>",
		},
		{
			name:     "empty span",
			input:    "____",
			expected: "<em></em>",
		},
		{
			name:     "unclosed left literal",
			input:    "__text",
			expected: "__text",
		},
		{
			name:     "single underscores left literal",
			input:    "_text_",
			expected: "_text_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertEmphasis(tt.input)
			if got != tt.expected {
				t.Errorf("convertEmphasis() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDirectiveRewriter_RewriteInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text idempotent",
			input:    "no markers here",
			expected: "no markers here",
		},
		{
			name:     "bold then emphasis",
			input:    "Hello **world** and __friends__",
			expected: "Hello <b>world</b> and <em>friends</em>",
		},
		{
			name:     "emphasis inside bold",
			input:    "**a __b__ c**",
			expected: "<b>a <em>b</em> c</b>",
		},
		{
			name:     "digest runs before bold",
			input:    "[[abc]] **x**",
			expected: "900150983cd24fb0d6963f7d28e17f72 <b>x</b>",
		},
		{
			name:     "digest content taken raw before elision",
			input:    "[[((a))]]",
			expected: md5hex("((a))"),
		},
		{
			name:     "elision strips c from an embedded digest",
			input:    "((x[[abc]]y))",
			expected: "x" + strings.ReplaceAll(md5hex("abc"), "c", "") + "y",
		},
		{
			name:     "elision runs before bold",
			input:    "((**cab**))",
			expected: "<b>ab</b>",
		},
		{
			name:     "all four rules on one line",
			input:    "[[a]] ((cut)) **b** __i__",
			expected: "0cc175b9c0f1b6a831c399e269772661 ut <b>b</b> <em>i</em>",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	rewriter := &DirectiveRewriter{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := rewriter.RewriteInline(tt.input)
			if got != tt.expected {
				t.Errorf("RewriteInline() = %q, want %q", got, tt.expected)
			}
		})
	}
}
