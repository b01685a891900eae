// Package pdf implements the document-assembly pipeline: converting
// uploaded files to PDF, merging ordered page sequences, combining mixed
// image/PDF inputs, and filling a PDF form template.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Directory permissions for created output directories.
const dirPerm = 0o750

// Assembler performs PDF operations scoped to a single output directory.
// Operations are synchronous and leave no partially written file under a
// final name: outputs are staged to a temporary sibling and renamed.
type Assembler struct {
	outputDir string
}

// NewAssembler creates the output directory when absent and returns an
// assembler writing into it.
func NewAssembler(outputDir string) (*Assembler, error) {
	if outputDir == "" {
		return nil, fmt.Errorf("output directory cannot be empty")
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Assembler{outputDir: outputDir}, nil
}

// OutputDir returns the directory this assembler writes into.
func (a *Assembler) OutputDir() string {
	return a.outputDir
}

// destPath joins outputName onto the output directory, appending the
// .pdf extension when missing.
func (a *Assembler) destPath(outputName string) string {
	if !strings.HasSuffix(strings.ToLower(outputName), ".pdf") {
		outputName += ".pdf"
	}
	return filepath.Join(a.outputDir, outputName)
}
