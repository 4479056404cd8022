package pipeline

import (
	"crypto/md5" // #nosec G501 -- identifier digest
	"encoding/hex"
	"regexp"
	"strings"
)

// delimiterWidth is the byte length of every inline delimiter ("**", "__", "[[", "]]", "((", "))").
const delimiterWidth = 2

// Precompiled inline marker patterns. (?s) lets a marker span newlines;
// .*? keeps adjacent markers from merging into one match.
var (
	// **text**
	boldPattern = regexp.MustCompile(`(?s)\*\*(.*?)\*\*`)

	// __text__
	emphasisPattern = regexp.MustCompile(`(?s)__(.*?)__`)

	// [[text]]
	digestPattern = regexp.MustCompile(`(?s)\[\[(.*?)\]\]`)

	// ((text))
	filterPattern = regexp.MustCompile(`(?s)\(\((.*?)\)\)`)
)

// SubstituteInline rewrites inline markers over the whole document.
// Each step sees the complete output of the previous one.
func SubstituteInline(content string) string {
	content = convertBold(content)
	content = convertEmphasis(content)
	content = convertDigests(content)
	content = convertFilters(content)
	return content
}

// convertBold transforms **text** to <b>text</b>.
func convertBold(content string) string {
	return boldPattern.ReplaceAllString(content, "<b>${1}</b>")
}

// convertEmphasis transforms __text__ to <em>text</em>.
func convertEmphasis(content string) string {
	return emphasisPattern.ReplaceAllString(content, "<em>${1}</em>")
}

// convertDigests replaces [[text]] with the hex MD5 digest of text.
func convertDigests(content string) string {
	return digestPattern.ReplaceAllStringFunc(content, func(match string) string {
		return Digest(unwrap(match))
	})
}

// convertFilters replaces ((text)) with text stripped of every 'c' and 'C'.
func convertFilters(content string) string {
	return filterPattern.ReplaceAllStringFunc(content, func(match string) string {
		return removeC(unwrap(match))
	})
}

// Digest returns the lowercase 32-character hex MD5 digest of the UTF-8 bytes of s.
func Digest(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// cRemover drops both cases of the letter c.
var cRemover = strings.NewReplacer("c", "", "C", "")

func removeC(s string) string {
	return cRemover.Replace(s)
}

// unwrap strips the two-byte delimiters from a marker match.
func unwrap(match string) string {
	return match[delimiterWidth : len(match)-delimiterWidth]
}
