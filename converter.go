package md2html

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Convert runs the full transformation on markdown and returns the HTML.
// It never fails: unmatched markers pass through unchanged.
func Convert(markdown string) string {
	content := pipeline.Preprocess(markdown)
	content = pipeline.SubstituteInline(content)
	return pipeline.StructureBlocks(content)
}

// converterConfig holds file handling settings.
type converterConfig struct {
	maxInputSize int64
	createDirs   bool
	fileMode     fs.FileMode
}

// Converter converts Markdown files to HTML files.
// A Converter holds no per-run state and is safe for concurrent use.
type Converter struct {
	cfg converterConfig
}

// Option configures a Converter.
type Option func(*Converter)

// WithMaxInputSize rejects inputs larger than n bytes. Zero means unlimited.
func WithMaxInputSize(n int64) Option {
	return func(c *Converter) {
		c.cfg.maxInputSize = n
	}
}

// WithCreateDirs creates missing parent directories of the output path.
func WithCreateDirs(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.createDirs = enabled
	}
}

// WithFileMode sets the permissions of the written output file.
func WithFileMode(mode fs.FileMode) Option {
	return func(c *Converter) {
		c.cfg.fileMode = mode
	}
}

// NewConverter creates a Converter. Without options, inputs have no size
// limit, the output directory must exist, and output is written 0644.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{fileMode: fileutil.FilePermissions},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertFile reads inputPath, converts it and writes the HTML to outputPath,
// replacing any existing file. The output is left untouched on any error.
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrMissingInput, inputPath)
	}

	data, err := fileutil.ReadFileLimited(inputPath, c.cfg.maxInputSize)
	if err != nil {
		if errors.Is(err, fileutil.ErrFileTooLarge) {
			return fmt.Errorf("%w: %v", ErrInputTooLarge, err)
		}
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	html := Convert(string(data))

	if c.cfg.createDirs {
		if err := fileutil.EnsureParentDir(outputPath); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	if err := fileutil.WriteFileAtomic(outputPath, []byte(html), c.cfg.fileMode); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, outputPath, err)
	}

	return nil
}
