// Package md2html converts a small Markdown dialect to HTML.
//
// # Quick Start
//
// Convert a string:
//
//	html := md2html.Convert("**Hello**\n\n* one\n* two\n")
//
// Convert a file, committing the output only if every step succeeds:
//
//	conv := md2html.NewConverter()
//	if err := conv.ConvertFile("README.md", "README.html"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Dialect
//
// Inline markers are rewritten first, over the whole document, in this order:
//
//	**text**   -> <b>text</b>
//	__text__   -> <em>text</em>
//	[[text]]   -> MD5 hex digest of text
//	((text))   -> text with every "c" and "C" removed
//
// Lines are then grouped into blocks:
//
//	* item     -> <ul> with an <li> per item
//	1. item    -> <ol> with an <li> per item (only the literal "1. " prefix)
//	text       -> <p> holding each line, indented
//
// A blank line closes an open paragraph but leaves an open list open.
// Content is not HTML-escaped.
//
// # File Options
//
// Options only affect file handling, never the generated HTML:
//
//	conv := md2html.NewConverter(
//	    md2html.WithMaxInputSize(1 << 20),
//	    md2html.WithCreateDirs(true),
//	    md2html.WithFileMode(0o600),
//	)
package md2html
