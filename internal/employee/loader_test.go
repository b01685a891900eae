package employee

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

const testSheet = "Sheet2"

// writeWorkbook saves a two-column workbook with the given rows on
// Sheet2 and returns its path.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if _, err := f.NewSheet(testSheet); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellValue(testSheet, cell, value); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "employee.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

// validRows mirrors validRaw as worksheet rows, with a native date cell
// for the date of birth.
func validRows() [][]any {
	return [][]any{
		{"First Name", "John"},
		{"Last Name", "Smith"},
		{"Phone Number", "0851234567"},
		{"Address", "1 Main Street"},
		{"Gender", "male"},
		{"Date of Birth", time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"Car Reg", "12D34567"},
		{"Penalty Points", "3"},
		{"Car Make", "Toyota"},
		{"Car Model", "Corolla"},
		{"Tax Expiry", "01/06/2025"},
		{"NCT Expiry", "2025-07-01"},
		{"Insurance Expiry", "01/08/2025"},
		{"Passport Expiry", "01/09/2025"},
		{"License Expiry", "01/10/2025"},
	}
}

func TestLoadEmployee(t *testing.T) {
	path := writeWorkbook(t, validRows())

	e, err := LoadEmployee(path, testSheet)
	if err != nil {
		t.Fatalf("LoadEmployee returned error: %v", err)
	}

	if e.FirstName != "John" || e.LastName != "Smith" {
		t.Errorf("name = %q %q, want John Smith", e.FirstName, e.LastName)
	}
	if e.PenaltyPoints != 3 {
		t.Errorf("PenaltyPoints = %d, want 3", e.PenaltyPoints)
	}
	if want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC); !e.TaxExpiry.Equal(want) {
		t.Errorf("TaxExpiry = %v, want %v", e.TaxExpiry, want)
	}
	// The native date cell round-trips through the raw serial value.
	if want := time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC); !e.DateOfBirth.Equal(want) {
		t.Errorf("DateOfBirth = %v, want %v", e.DateOfBirth, want)
	}
}

func TestLoadEmployeeMissingField(t *testing.T) {
	rows := validRows()
	// Drop the address row entirely.
	rows = append(rows[:3], rows[4:]...)
	path := writeWorkbook(t, rows)

	_, err := LoadEmployee(path, testSheet)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "address" {
		t.Errorf("missing field = %q, want %q", missing.Field, "address")
	}
	if !strings.Contains(err.Error(), testSheet) {
		t.Errorf("error %q does not identify the sheet", err)
	}
}

func TestLoadEmployeeEmptyField(t *testing.T) {
	rows := validRows()
	rows[8] = []any{"Car Make", "   "}
	path := writeWorkbook(t, rows)

	_, err := LoadEmployee(path, testSheet)
	var empty *EmptyFieldError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyFieldError, got %v", err)
	}
	if empty.Field != "car_make" {
		t.Errorf("empty field = %q, want %q", empty.Field, "car_make")
	}
}

func TestLoadEmployeeUnparseableExpiry(t *testing.T) {
	rows := validRows()
	rows[10] = []any{"Tax Expiry", "soon"}
	path := writeWorkbook(t, rows)

	e, err := LoadEmployee(path, testSheet)
	if err != nil {
		t.Fatalf("LoadEmployee returned error: %v", err)
	}
	if !e.TaxExpiry.IsZero() {
		t.Errorf("TaxExpiry = %v, want absent", e.TaxExpiry)
	}
}

func TestLoadEmployeeDuplicateLabelLastWins(t *testing.T) {
	rows := append(validRows(), []any{"car make", "Honda"})
	path := writeWorkbook(t, rows)

	e, err := LoadEmployee(path, testSheet)
	if err != nil {
		t.Fatalf("LoadEmployee returned error: %v", err)
	}
	if e.CarMake != "Honda" {
		t.Errorf("CarMake = %q, want %q", e.CarMake, "Honda")
	}
}

func TestLoadEmployeeIgnoresExtraColumns(t *testing.T) {
	rows := validRows()
	rows[0] = []any{"First Name", "John", "ignored", "also ignored"}
	path := writeWorkbook(t, rows)

	e, err := LoadEmployee(path, testSheet)
	if err != nil {
		t.Fatalf("LoadEmployee returned error: %v", err)
	}
	if e.FirstName != "John" {
		t.Errorf("FirstName = %q, want %q", e.FirstName, "John")
	}
}

func TestLoadEmployeeUnknownSheet(t *testing.T) {
	path := writeWorkbook(t, validRows())
	if _, err := LoadEmployee(path, "Nope"); err == nil {
		t.Error("expected an error for an unknown worksheet")
	}
}

func TestLoadEmployeeMissingFile(t *testing.T) {
	if _, err := LoadEmployee(filepath.Join(t.TempDir(), "gone.xlsx"), testSheet); err == nil {
		t.Error("expected an error for a missing workbook")
	}
}

func TestLoadEmployeeOptionalIRP(t *testing.T) {
	rows := append(validRows(),
		[]any{"IRP Type", "Stamp 4"},
		[]any{"IRP Expiry", "10/03/2026"},
	)
	path := writeWorkbook(t, rows)

	e, err := LoadEmployee(path, testSheet)
	if err != nil {
		t.Fatalf("LoadEmployee returned error: %v", err)
	}
	if e.IRPType != "Stamp 4" {
		t.Errorf("IRPType = %q, want %q", e.IRPType, "Stamp 4")
	}
	if want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC); !e.IRPExpiry.Equal(want) {
		t.Errorf("IRPExpiry = %v, want %v", e.IRPExpiry, want)
	}
}
