// Command domfd-fields prints the fillable fields of a PDF template so
// its field names can be checked against the generation value mapping.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/VolodymyrVolynets/domFD/internal/pdf"
)

var (
	outputFormat = flag.String("format", "text", "Output format: text, json")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printUsage()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: PDF file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	path := flag.Arg(0)
	fields, err := pdf.ListFormFields(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := printFields(path, fields); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printFields(path string, fields []pdf.FormField) error {
	if *outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	}

	if len(fields) == 0 {
		fmt.Printf("%s: no fillable fields\n", path)
		return nil
	}
	fmt.Printf("%s: %d fields\n", path, len(fields))
	for _, field := range fields {
		if field.Value != "" {
			fmt.Printf("  %-30s %-10s = %q\n", field.Name, field.Type, field.Value)
			continue
		}
		fmt.Printf("  %-30s %s\n", field.Name, field.Type)
	}
	return nil
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  domfd-fields [OPTIONS] <pdf_file>")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format    Output format: text (default), json")
	fmt.Println("  -help      Show this help message")
}
