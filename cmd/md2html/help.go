package main

import (
	"fmt"
	"io"
)

// usageLine is the one-line synopsis shown on usage errors.
const usageLine = "Usage: md2html [flags] <input_file> <output_file>"

// printUsage prints the full usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input_file     Existing Markdown file")
	fmt.Fprintln(w, "  output_file    HTML file to create or overwrite")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show detailed timing")
	fmt.Fprintln(w, "      --version         Show version information")
	fmt.Fprintln(w, "  -h, --help            Show this help")
	fmt.Fprintln(w, "      --                End of flags (for file names starting with -)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG           Config file used when --config is not set")
	fmt.Fprintln(w, "  MD2HTML_MAX_INPUT_SIZE   Maximum input size in bytes (0 = unlimited)")
}
