package md2html

import "errors"

// Sentinel errors for file conversion.
var (
	ErrMissingInput  = errors.New("missing input file")
	ErrReadInput     = errors.New("failed to read input file")
	ErrInputTooLarge = errors.New("input file too large")
	ErrWriteOutput   = errors.New("failed to write output file")
)
