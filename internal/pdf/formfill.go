package pdf

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// FillForm writes values into the fillable fields of templatePath and
// stores the result as outputName. A field's name resolves from its T
// entry or, failing that, from its MK appearance-characteristics caption.
// Names carrying a #N deduplication suffix fall back to their base name.
// Fields without a resolvable or matching name are left untouched; pages
// and the form dictionary pass through unchanged apart from the written
// values.
func (a *Assembler) FillForm(templatePath string, values map[string]string, outputName string) (string, error) {
	destination := a.destPath(outputName)

	ctx, err := api.ReadContextFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", templatePath, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return "", fmt.Errorf("template page count: %w", err)
	}

	rootDict, err := ctx.Catalog()
	if err != nil {
		return "", fmt.Errorf("template catalog: %w", err)
	}

	acroObj, found := rootDict.Find("AcroForm")
	if !found {
		return "", fmt.Errorf("template %s has no fillable form", templatePath)
	}
	acroDict, err := ctx.DereferenceDict(acroObj)
	if err != nil || acroDict == nil {
		return "", fmt.Errorf("dereference AcroForm: %w", err)
	}

	fieldsObj, found := acroDict.Find("Fields")
	if !found {
		return "", fmt.Errorf("template %s has no form fields", templatePath)
	}
	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return "", fmt.Errorf("dereference Fields array: %w", err)
	}

	filled := 0
	for _, fieldRef := range fieldsArray {
		n, err := fillField(ctx, fieldRef, values)
		if err != nil {
			return "", err
		}
		filled += n
	}

	// Have viewers regenerate appearances so the written strings render.
	acroDict["NeedAppearances"] = types.Boolean(true)

	tmp := destination + ".tmp"
	if err := api.WriteContextFile(ctx, tmp); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write filled form: %w", err)
	}
	if err := os.Rename(tmp, destination); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("finalize filled form: %w", err)
	}

	log.Printf("filled %d form fields into %s", filled, destination)
	return destination, nil
}

// fillField writes the matching value into a single field dictionary and
// recurses into its widget kids. Returns how many values were written.
func fillField(ctx *model.Context, fieldObj types.Object, values map[string]string) (int, error) {
	fieldDict, err := ctx.DereferenceDict(fieldObj)
	if err != nil {
		return 0, fmt.Errorf("dereference field: %w", err)
	}
	if fieldDict == nil {
		return 0, nil
	}

	filled := 0
	if name := fieldName(ctx, fieldDict); name != "" {
		if value, ok := lookupValue(values, name); ok {
			fieldDict["V"] = types.StringLiteral(value)
			// Stale appearance streams would mask the new value.
			delete(fieldDict, "AP")
			filled++
		}
	}

	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kids, err := ctx.DereferenceArray(kidsObj); err == nil {
			for _, kid := range kids {
				n, err := fillField(ctx, kid, values)
				if err != nil {
					return filled, err
				}
				filled += n
			}
		}
	}
	return filled, nil
}

// fieldName resolves a field's name from its T entry or the MK caption,
// with enclosing parentheses stripped.
func fieldName(ctx *model.Context, fieldDict types.Dict) string {
	if nameObj, found := fieldDict.Find("T"); found {
		if name, err := ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil); err == nil && name != "" {
			return name
		}
	}
	if mkObj, found := fieldDict.Find("MK"); found {
		if mkDict, err := ctx.DereferenceDict(mkObj); err == nil && mkDict != nil {
			if caObj, found := mkDict.Find("CA"); found {
				if caption, err := ctx.DereferenceStringOrHexLiteral(caObj, model.V10, nil); err == nil {
					return strings.Trim(caption, "()")
				}
			}
		}
	}
	return ""
}

// lookupValue matches a field name against the value mapping, retrying
// with the base name when a #N deduplication suffix is present.
func lookupValue(values map[string]string, name string) (string, bool) {
	if value, ok := values[name]; ok {
		return value, true
	}
	if i := strings.Index(name, "#"); i >= 0 {
		value, ok := values[name[:i]]
		return value, ok
	}
	return "", false
}
