package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// FormField describes one fillable field of a PDF.
type FormField struct {
	Name  string
	Type  string
	Value string
}

// ListFormFields reports the fillable fields of a PDF in document order.
// A PDF without an interactive form yields an empty list, not an error.
func ListFormFields(path string) ([]FormField, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("read PDF %s: %w", path, err)
	}

	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	acroObj, found := rootDict.Find("AcroForm")
	if !found {
		return nil, nil
	}
	acroDict, err := ctx.DereferenceDict(acroObj)
	if err != nil || acroDict == nil {
		return nil, err
	}

	fieldsObj, found := acroDict.Find("Fields")
	if !found {
		return nil, nil
	}
	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, fmt.Errorf("dereference Fields array: %w", err)
	}

	var fields []FormField
	for _, fieldRef := range fieldsArray {
		fields = appendFields(ctx, fieldRef, fields)
	}
	return fields, nil
}

// appendFields collects one field dictionary and its widget kids.
func appendFields(ctx *model.Context, fieldObj types.Object, fields []FormField) []FormField {
	fieldDict, err := ctx.DereferenceDict(fieldObj)
	if err != nil || fieldDict == nil {
		return fields
	}

	if name := fieldName(ctx, fieldDict); name != "" {
		field := FormField{Name: name, Type: fieldType(ctx, fieldDict)}
		if valueObj, found := fieldDict.Find("V"); found {
			if value, err := ctx.DereferenceStringOrHexLiteral(valueObj, model.V10, nil); err == nil {
				field.Value = value
			}
		}
		fields = append(fields, field)
	}

	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kids, err := ctx.DereferenceArray(kidsObj); err == nil {
			for _, kid := range kids {
				fields = appendFields(ctx, kid, fields)
			}
		}
	}
	return fields
}

// fieldType maps the FT entry (inherited from the parent when absent)
// onto a readable label.
func fieldType(ctx *model.Context, fieldDict types.Dict) string {
	ftObj, found := fieldDict.Find("FT")
	if !found {
		if parentObj, ok := fieldDict.Find("Parent"); ok {
			if parentDict, err := ctx.DereferenceDict(parentObj); err == nil && parentDict != nil {
				return fieldType(ctx, parentDict)
			}
		}
		return "unknown"
	}

	ftName, err := ctx.DereferenceName(ftObj, model.V10, nil)
	if err != nil {
		return "unknown"
	}
	switch ftName {
	case "Tx":
		return "text"
	case "Btn":
		return "button"
	case "Ch":
		return "choice"
	case "Sig":
		return "signature"
	}
	return "unknown"
}
