// Package pipeline implements the Markdown-to-HTML conversion stages.
//
// Two interchangeable engines sit behind the HTMLConverter interface:
//   - LineEngine: the line-by-line dialect engine (headings, flat lists,
//     paragraph assembly, bold/emphasis spans, digest and elision
//     directives)
//   - GoldmarkConverter: full CommonMark+GFM conversion via goldmark
//
// The package also hosts the stages shared by both engines: YAML front
// matter splitting and wrapping a fragment into a standalone HTML5
// document with an embedded stylesheet.
//
// File I/O, flag handling, and batch orchestration are handled by the cmd
// layer; the root md2html package composes these stages into a Converter.
package pipeline
