package pdf

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// CombineFiles assembles a mix of raster images and PDFs into one
// document, in input order. Images are converted to transient single-page
// PDFs first; inputs with an unsupported extension are skipped with a
// warning. Transient files are removed whether or not assembly succeeds.
func (a *Assembler) CombineFiles(paths []string, outputName string) (string, error) {
	var inputs []string
	var transient []string
	defer func() {
		for _, p := range transient {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				log.Printf("could not remove transient file %s: %v", p, err)
			}
		}
	}()

	for i, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		switch {
		case rasterExts[ext]:
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			tempPDF := filepath.Join(a.outputDir, fmt.Sprintf("_temp_%d_%s.pdf", i, base))
			if err := a.imageToPDF(path, tempPDF); err != nil {
				return "", err
			}
			transient = append(transient, tempPDF)
			inputs = append(inputs, tempPDF)
			log.Printf("converted image to transient PDF: %s", tempPDF)
		case ext == ".pdf":
			if _, err := Inspect(path); err != nil {
				return "", fmt.Errorf("unreadable PDF %s: %w", path, err)
			}
			inputs = append(inputs, path)
		default:
			log.Printf("skipping unsupported file: %s", path)
		}
	}

	if len(inputs) == 0 {
		return "", fmt.Errorf("no usable files to combine")
	}

	destination := a.destPath(outputName)
	tmp := destination + ".tmp"
	if err := api.MergeCreateFile(inputs, tmp, false, newConfiguration()); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("combine files: %w", err)
	}
	if err := os.Rename(tmp, destination); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("finalize combined PDF: %w", err)
	}

	log.Printf("combined %d files into %s", len(inputs), destination)
	return destination, nil
}
