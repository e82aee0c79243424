// Package md2html converts Markdown documents to HTML.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(result.HTML), 0644)
//
// The result contains an HTML fragment by default, or a complete HTML5
// document when the converter was built with WithStandalone.
//
// # Engines
//
// Two conversion engines are available, selected with WithEngine:
//
//   - EngineLines (default): a small line-oriented dialect. Each line is
//     rewritten in place (**bold** to <b>, __emphasis__ to <em>, [[text]]
//     to its MD5 digest, ((text)) with the letter c removed), then headings,
//     dash/star lists, and paragraphs are assembled line by line.
//   - EngineGFM: CommonMark plus GitHub Flavored Markdown via Goldmark,
//     with footnotes and syntax highlighting.
//
// # Standalone Documents
//
// Use WithStandalone to wrap the fragment in an HTML5 document shell. The
// document title is resolved from Input.Title, then the front matter title,
// then the first level-one heading, then the WithTitle default. WithCSS
// embeds stylesheet content in a <style> block in the document head:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithEngine(md2html.EngineGFM),
//	    md2html.WithStandalone(),
//	    md2html.WithCSS("body { font-family: serif; }"),
//	)
//
// # Front Matter
//
// Use WithFrontMatter to split and parse a leading YAML front matter block
// before conversion. Parsed metadata is returned in Result.Matter and the
// block is removed from the converted output:
//
//	---
//	title: Release Notes
//	author: Jane Doe
//	tags: [release, notes]
//	---
package md2html
