package pdf

import "fmt"

// UnsupportedFormatError reports an input file whose extension is neither
// a supported raster image nor a PDF.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format for conversion: %s", e.Path)
}
