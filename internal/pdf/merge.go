package pdf

import (
	"fmt"
	"log"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// MergePDFs appends every page of each listed PDF, in list order, into a
// single document named outputName. Page order within each source is
// preserved.
func (a *Assembler) MergePDFs(paths []string, outputName string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("no PDF files to merge")
	}

	for _, path := range paths {
		if _, err := Inspect(path); err != nil {
			return "", fmt.Errorf("unreadable PDF %s: %w", path, err)
		}
	}

	destination := a.destPath(outputName)
	tmp := destination + ".tmp"
	if err := api.MergeCreateFile(paths, tmp, false, newConfiguration()); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("merge PDFs: %w", err)
	}
	if err := os.Rename(tmp, destination); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("finalize merged PDF: %w", err)
	}

	log.Printf("merged %d PDFs into %s", len(paths), destination)
	return destination, nil
}
