// Package pipeline implements the Markdown-to-HTML transformation stages.
//
// The transformation runs once over the whole document, in order:
//   - Preprocessing (line ending normalization)
//   - Inline substitution (bold, emphasis, [[digest]], ((filter)))
//   - Block structuring (unordered lists, ordered lists, paragraphs)
//
// Every stage is a pure function from string to string. File I/O lives in the
// root md2html package and the CLI.
package pipeline
