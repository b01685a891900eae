// Command domfd runs the employee document pipeline: load a record from
// a workbook, convert uploaded documents under their archive tags, and
// fill the printable form template.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/VolodymyrVolynets/domFD/internal/config"
	"github.com/VolodymyrVolynets/domFD/internal/employee"
	"github.com/VolodymyrVolynets/domFD/internal/generate"
	"github.com/VolodymyrVolynets/domFD/internal/pdf"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
)

// upload is one --upload argument, already validated.
type upload struct {
	DocType employee.DocumentType
	Path    string
}

// parseUpload splits a "DocType=path" argument and checks the document
// type against the supported set.
func parseUpload(arg string) (upload, error) {
	docType, path, found := strings.Cut(arg, "=")
	if !found || path == "" {
		return upload{}, fmt.Errorf("upload %q: expected DocType=path", arg)
	}
	for _, known := range employee.DocumentTypes {
		if strings.EqualFold(docType, string(known)) {
			return upload{DocType: known, Path: path}, nil
		}
	}
	return upload{}, &employee.UnknownDocumentTypeError{DocType: docType}
}

func setupFlags() {
	pflag.String("excel", "", "Path to the employee workbook (.xlsx or .xls)")
	pflag.String("sheet", "Sheet2", "Worksheet holding the employee record")
	pflag.String("settings", "settings.json", "Path to the persisted settings file")
	pflag.String("template", filepath.Join("templates", "template.pdf"), "Fillable form template")
	pflag.String("out", "", "Base output directory (defaults to the workbook's directory)")
	pflag.StringArray("upload", nil, "Document to archive as DocType=path (repeatable)")
	pflag.Bool("combine", false, "Also combine the uploaded documents into one PDF")
	pflag.Bool("version", false, "Print version and exit")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --excel=employee.xlsx --upload=Tax=tax.jpg --upload=NCT=nct.pdf\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --excel=employee.xlsx --sheet=Sheet2 --combine --upload=GDPR=gdpr.png\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDocument types: ")
		for i, docType := range employee.DocumentTypes {
			if i > 0 {
				fmt.Fprint(os.Stderr, ", ")
			}
			fmt.Fprint(os.Stderr, string(docType))
		}
		fmt.Fprintln(os.Stderr)
	}

	viper.SetEnvPrefix("DOMFD")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(pflag.CommandLine)
}

func main() {
	setupFlags()
	pflag.Parse()

	if viper.GetBool("version") {
		fmt.Printf("domfd %s (built %s)\n", version, buildTime)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	workbook := viper.GetString("excel")
	if workbook == "" {
		pflag.Usage()
		return fmt.Errorf("--excel is required")
	}

	settings, err := config.Load(viper.GetString("settings"))
	if err != nil {
		return err
	}
	ref, err := settings.ReferenceDate()
	if err != nil {
		return err
	}

	record, err := employee.LoadEmployee(workbook, viper.GetString("sheet"))
	if err != nil {
		return fmt.Errorf("load %s: %w", workbook, err)
	}
	log.Printf("loaded record for %s %s", record.FirstName, record.LastName)

	outBase := viper.GetString("out")
	if outBase == "" {
		outBase = filepath.Dir(workbook)
	}
	assembler, err := pdf.NewAssembler(generate.OutputDirFor(record, outBase))
	if err != nil {
		return err
	}

	uploads := make([]upload, 0, len(viper.GetStringSlice("upload")))
	for _, arg := range viper.GetStringSlice("upload") {
		u, err := parseUpload(arg)
		if err != nil {
			return err
		}
		uploads = append(uploads, u)
	}

	for _, u := range uploads {
		tag, err := record.DocumentTag(u.DocType, ref)
		if err != nil {
			return err
		}
		converted, err := assembler.ConvertToPDF(u.Path, tag)
		if err != nil {
			return fmt.Errorf("convert %s: %w", u.Path, err)
		}
		log.Printf("archived %s as %s", u.Path, converted)
	}

	if viper.GetBool("combine") {
		paths := make([]string, len(uploads))
		for i, u := range uploads {
			paths[i] = u.Path
		}
		combined, err := assembler.CombineFiles(paths, record.LastName+" Combined")
		if err != nil {
			return fmt.Errorf("combine uploads: %w", err)
		}
		log.Printf("combined %d uploads into %s", len(paths), combined)
	}

	values := generate.FormValues(record, settings, ref)
	filled, err := assembler.FillForm(viper.GetString("template"), values, "to print")
	if err != nil {
		return fmt.Errorf("fill template: %w", err)
	}
	log.Printf("wrote %s", filled)
	return nil
}
