package pdf

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/image/bmp"
)

// rasterExts are the image extensions accepted for conversion.
var rasterExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
}

// ConvertToPDF normalizes a single input file into a PDF named
// outputName inside the output directory. Raster images become a
// single-page PDF, existing PDFs are copied byte for byte, and anything
// else fails with UnsupportedFormatError. Converting a file onto itself
// is a no-op.
func (a *Assembler) ConvertToPDF(inputPath, outputName string) (string, error) {
	destination := a.destPath(outputName)

	absIn, err := filepath.Abs(inputPath)
	if err != nil {
		return "", fmt.Errorf("resolve input path: %w", err)
	}
	absDest, err := filepath.Abs(destination)
	if err != nil {
		return "", fmt.Errorf("resolve destination path: %w", err)
	}
	if absIn == absDest {
		log.Printf("source and destination are the same: %s", destination)
		return destination, nil
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	switch {
	case rasterExts[ext]:
		if err := a.imageToPDF(inputPath, destination); err != nil {
			return "", err
		}
	case ext == ".pdf":
		if err := copyFile(inputPath, destination); err != nil {
			return "", err
		}
	default:
		return "", &UnsupportedFormatError{Path: inputPath}
	}

	log.Printf("stored converted PDF: %s", destination)
	return destination, nil
}

// imageToPDF renders one raster image as a single-page PDF at
// destination. BMP is transcoded to PNG first; the import handles the
// remaining formats natively.
func (a *Assembler) imageToPDF(inputPath, destination string) error {
	imgPath := inputPath
	if strings.EqualFold(filepath.Ext(inputPath), ".bmp") {
		pngPath, cleanup, err := transcodeBMP(inputPath)
		if err != nil {
			return err
		}
		defer cleanup()
		imgPath = pngPath
	}

	tmp := destination + ".tmp"
	if err := api.ImportImagesFile([]string{imgPath}, tmp, nil, newConfiguration()); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("import image %s: %w", inputPath, err)
	}
	if err := os.Rename(tmp, destination); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalize converted PDF: %w", err)
	}
	return nil
}

// transcodeBMP decodes a BMP image and re-encodes it as a temporary PNG.
// The caller removes the file via the returned cleanup.
func transcodeBMP(inputPath string) (string, func(), error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return "", nil, fmt.Errorf("open image %s: %w", inputPath, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return "", nil, fmt.Errorf("decode bmp %s: %w", inputPath, err)
	}

	tmp, err := os.CreateTemp("", "domfd-bmp-*.png")
	if err != nil {
		return "", nil, fmt.Errorf("create temp png: %w", err)
	}
	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", nil, err
	}
	return tmp.Name(), func() { _ = os.Remove(tmp.Name()) }, nil
}

// copyFile copies src to dst through a temporary file in the destination
// directory so a failed copy never leaves a partial dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".copy-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("finalize copy: %w", err)
	}
	return nil
}
