package pdf

import (
	"fmt"
	"os"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"
)

// PDFInfo describes a readable PDF input.
type PDFInfo struct {
	Path  string
	Pages int
	Size  int64
}

// Inspect verifies that path points at a readable PDF file and reports
// its page count and size. Merge and combine screen their inputs with it
// so a corrupt upload fails with the offending path instead of a generic
// merge error.
func Inspect(path string) (PDFInfo, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return PDFInfo{}, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return PDFInfo{}, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return PDFInfo{}, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return PDFInfo{}, fmt.Errorf("file is not a PDF: %s", path)
	}

	f, reader, err := ledongthuc.Open(path)
	if err != nil {
		return PDFInfo{}, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	return PDFInfo{
		Path:  path,
		Pages: reader.NumPage(),
		Size:  fileInfo.Size(),
	}, nil
}
