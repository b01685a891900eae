package employee

import (
	"fmt"
	"strings"
)

// MissingFieldError reports a required field whose labels were not found
// anywhere in the sheet.
type MissingFieldError struct {
	Field   string
	Aliases []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q (accepted labels: %s)",
		e.Field, strings.Join(e.Aliases, ", "))
}

// EmptyFieldError reports a required field whose label was present but
// whose cell was blank.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("field %q is empty", e.Field)
}

// UnknownDocumentTypeError reports a document tag request for a type the
// system does not know.
type UnknownDocumentTypeError struct {
	DocType string
}

func (e *UnknownDocumentTypeError) Error() string {
	return fmt.Sprintf("unknown document type: %s", e.DocType)
}
