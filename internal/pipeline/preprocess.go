package pipeline

import "regexp"

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocess prepares raw file content for the inline and block stages.
func Preprocess(content string) string {
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
