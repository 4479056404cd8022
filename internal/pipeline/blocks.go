package pipeline

import "strings"

// List item prefixes. Only the literal "1. " opens an ordered item.
const (
	unorderedPrefix = "* "
	orderedPrefix   = "1. "
)

// indent prefixes every line emitted inside a container.
const indent = "    "

// blockState is the single container open at a point in the scan.
type blockState int

const (
	stateNone blockState = iota
	stateUnordered
	stateOrdered
	stateParagraph
)

// openTag returns the container opening tag, or "" for stateNone.
func (s blockState) openTag() string {
	switch s {
	case stateUnordered:
		return "<ul>\n"
	case stateOrdered:
		return "<ol>\n"
	case stateParagraph:
		return "<p>\n"
	default:
		return ""
	}
}

// closeTag returns the container closing tag, or "" for stateNone.
func (s blockState) closeTag() string {
	switch s {
	case stateUnordered:
		return "</ul>\n"
	case stateOrdered:
		return "</ol>\n"
	case stateParagraph:
		return "</p>\n"
	default:
		return ""
	}
}

// lineKind is the block role of a single line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineUnorderedItem
	lineOrderedItem
	lineParagraph
)

// container returns the block state a line of this kind needs open.
func (k lineKind) container() blockState {
	switch k {
	case lineUnorderedItem:
		return stateUnordered
	case lineOrderedItem:
		return stateOrdered
	case lineParagraph:
		return stateParagraph
	default:
		return stateNone
	}
}

// classifyLine returns the role of line and the content to emit for it.
// Prefix checks run before the blank check, so "* " alone is an empty item.
func classifyLine(line string) (lineKind, string) {
	switch {
	case strings.HasPrefix(line, unorderedPrefix):
		return lineUnorderedItem, line[len(unorderedPrefix):]
	case strings.HasPrefix(line, orderedPrefix):
		return lineOrderedItem, line[len(orderedPrefix):]
	case strings.TrimSpace(line) != "":
		return lineParagraph, line
	default:
		return lineBlank, ""
	}
}

// blockWriter accumulates HTML while tracking the open container.
type blockWriter struct {
	buf   strings.Builder
	state blockState
}

// open switches to the container for want, closing any other one first.
func (w *blockWriter) open(want blockState) {
	if w.state == want {
		return
	}
	w.close()
	w.buf.WriteString(want.openTag())
	w.state = want
}

// close emits the closing tag of the open container, if any.
func (w *blockWriter) close() {
	w.buf.WriteString(w.state.closeTag())
	w.state = stateNone
}

// writeLine handles one classified line.
func (w *blockWriter) writeLine(kind lineKind, content string) {
	switch kind {
	case lineUnorderedItem, lineOrderedItem:
		w.open(kind.container())
		w.buf.WriteString(indent + "<li>" + content + "</li>\n")
	case lineParagraph:
		w.open(stateParagraph)
		w.buf.WriteString(indent + content + "\n")
	case lineBlank:
		// Blank lines end paragraphs only; an open list stays open.
		if w.state == stateParagraph {
			w.close()
		}
	}
}

// StructureBlocks groups the lines of content into <ul>, <ol> and <p>
// containers in a single forward scan. Items are emitted as indented
// <li> lines and paragraph lines are emitted indented, one per input line.
func StructureBlocks(content string) string {
	var w blockWriter
	for _, line := range strings.Split(content, "\n") {
		w.writeLine(classifyLine(line))
	}
	w.close()
	return w.buf.String()
}
