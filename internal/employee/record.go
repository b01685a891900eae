// Package employee extracts a validated employee/vehicle record from a
// two-column worksheet. Sheet labels are matched against a data-driven
// alias table, required fields must be present and non-blank, and dates
// degrade silently to absent when they cannot be parsed.
package employee

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DocumentType identifies one of the upload categories an employee file
// can carry.
type DocumentType string

const (
	DocTax           DocumentType = "Tax"
	DocNCT           DocumentType = "NCT"
	DocInsurance     DocumentType = "Insurance"
	DocLicense       DocumentType = "License"
	DocPassport      DocumentType = "Passport"
	DocIRP           DocumentType = "IRP"
	DocPenaltyPoints DocumentType = "Penalty Points"
	DocGDPR          DocumentType = "GDPR"
	DocSPF           DocumentType = "SPF"
	DocOBU           DocumentType = "OBU"
)

// DocumentTypes lists every supported document type in display order.
var DocumentTypes = []DocumentType{
	DocTax, DocNCT, DocInsurance, DocLicense, DocPassport,
	DocIRP, DocPenaltyPoints, DocGDPR, DocSPF, DocOBU,
}

// Employee is the validated in-memory record. Date fields use the zero
// time as the explicit absent value; a record with an absent expiry date
// is still valid as long as the cell it came from was not blank.
type Employee struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	PhoneNumber string `validate:"required"`
	Address     string `validate:"required"`
	Gender      string `validate:"required"`
	DateOfBirth time.Time

	CarReg        string `validate:"required"`
	CarMake       string `validate:"required"`
	CarModel      string `validate:"required"`
	PenaltyPoints int    `validate:"min=0"`

	TaxExpiry       time.Time
	NCTExpiry       time.Time
	InsuranceExpiry time.Time
	PassportExpiry  time.Time
	LicenseExpiry   time.Time

	IRPType   string
	IRPExpiry time.Time
}

// NewEmployee builds a record from resolved canonical fields. Date text
// that fails to parse becomes the zero time and penalty points that do
// not look like a non-negative integer coerce to 0; neither is an error.
func NewEmployee(fields map[string]string) *Employee {
	e := &Employee{
		FirstName:     fields["first_name"],
		LastName:      fields["last_name"],
		PhoneNumber:   fields["phone_number"],
		Address:       fields["address"],
		Gender:        fields["gender"],
		CarReg:        fields["car_reg"],
		CarMake:       fields["car_make"],
		CarModel:      fields["car_model"],
		PenaltyPoints: coercePenaltyPoints(fields["penalty_points"]),
		IRPType:       fields["irp_type"],
	}
	e.DateOfBirth, _ = ParseDate(fields["date_of_birth"])
	e.TaxExpiry, _ = ParseDate(fields["tax_expiry"])
	e.NCTExpiry, _ = ParseDate(fields["nct_expiry"])
	e.InsuranceExpiry, _ = ParseDate(fields["insurance_expiry"])
	e.PassportExpiry, _ = ParseDate(fields["passport_expiry"])
	e.LicenseExpiry, _ = ParseDate(fields["license_expiry"])
	e.IRPExpiry, _ = ParseDate(fields["irp_expiry"])
	return e
}

// coercePenaltyPoints reads raw as a non-negative integer, or 0.
func coercePenaltyPoints(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Validate rechecks the record invariants at the struct level.
func (e *Employee) Validate() error {
	return validator.New().Struct(e)
}

// Age returns the employee's age in full years as of today, or 0 when
// the date of birth is absent.
func (e *Employee) Age() int {
	if e.DateOfBirth.IsZero() {
		return 0
	}
	today := time.Now()
	age := today.Year() - e.DateOfBirth.Year()
	if today.Month() < e.DateOfBirth.Month() ||
		(today.Month() == e.DateOfBirth.Month() && today.Day() < e.DateOfBirth.Day()) {
		age--
	}
	return age
}

// Title derives the salutation from the gender field.
func (e *Employee) Title() string {
	switch strings.ToLower(strings.TrimSpace(e.Gender)) {
	case "male", "m":
		return "Mr"
	case "female", "f":
		return "Ms"
	default:
		return "Mx"
	}
}

// PenaltyPointExpiry returns when the current penalty-point state lapses:
// three months after ref with a clean record, one month otherwise.
func (e *Employee) PenaltyPointExpiry(ref time.Time) (time.Time, error) {
	if ref.IsZero() {
		return time.Time{}, fmt.Errorf("penalty point expiry requires a valid reference date")
	}
	months := 1
	if e.PenaltyPoints == 0 {
		months = 3
	}
	return AddMonths(ref, months), nil
}

const tagDateLayout = "02-01-2006"

// tagDate formats a date for use inside a document tag; absent dates
// render as "Unknown".
func tagDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format(tagDateLayout)
}

// DocumentTag returns the deterministic file-name stem for one document
// type. ref is the visit date and is only consulted for penalty points.
func (e *Employee) DocumentTag(doc DocumentType, ref time.Time) (string, error) {
	switch doc {
	case DocTax:
		return fmt.Sprintf("%s Tax %s %s", e.LastName, tagDate(e.TaxExpiry), e.CarReg), nil
	case DocNCT:
		return fmt.Sprintf("%s NCT %s %s", e.LastName, tagDate(e.NCTExpiry), e.CarReg), nil
	case DocInsurance:
		return fmt.Sprintf("%s Insurance %s %s", e.LastName, tagDate(e.InsuranceExpiry), e.CarReg), nil
	case DocLicense:
		return fmt.Sprintf("%s License %s", e.LastName, tagDate(e.LicenseExpiry)), nil
	case DocPassport:
		return fmt.Sprintf("%s Passport %s", e.LastName, tagDate(e.PassportExpiry)), nil
	case DocIRP:
		irpType := e.IRPType
		if irpType == "" {
			irpType = "Unknown"
		}
		return fmt.Sprintf("%s Irp %s %s", e.LastName, tagDate(e.IRPExpiry), irpType), nil
	case DocPenaltyPoints:
		expiry, err := e.PenaltyPointExpiry(ref)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s PP %s", e.LastName, tagDate(expiry)), nil
	case DocGDPR:
		// "GPDR" matches the file names the existing archive was built with.
		return e.LastName + " GPDR", nil
	case DocSPF:
		return e.LastName + " SPF", nil
	case DocOBU:
		return fmt.Sprintf("%s OBU %s", e.LastName, e.CarReg), nil
	}
	return "", &UnknownDocumentTypeError{DocType: string(doc)}
}
