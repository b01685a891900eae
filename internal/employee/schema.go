package employee

import "strings"

// fieldSpec maps a canonical field name to the sheet labels accepted for
// it, in lookup order.
type fieldSpec struct {
	Name    string
	Aliases []string
}

// requiredFields must resolve to a non-blank cell. Order matters twice:
// aliases are consulted first-match-wins, and validation reports the
// first failing field in this order.
var requiredFields = []fieldSpec{
	{"first_name", []string{"first_name", "first name"}},
	{"last_name", []string{"last_name", "last name"}},
	{"phone_number", []string{"phone_number", "phone number", "mobile"}},
	{"address", []string{"address"}},
	{"gender", []string{"male/female", "gender", "sex"}},
	{"car_reg", []string{"car_reg", "car reg", "registration"}},
	{"penalty_points", []string{"number_of_penalty_points", "number of penalty points", "penalty points", "penalty_points"}},
	{"car_make", []string{"car_make", "car make"}},
	{"car_model", []string{"car_model", "car model"}},
	{"tax_expiry", []string{"tax_expiry", "tax expiry"}},
	{"nct_expiry", []string{"nct_expiry", "nct expiry"}},
	{"insurance_expiry", []string{"insurance_expiry", "insurance expiry"}},
	{"passport_expiry", []string{"passport_expiry", "passport expiry"}},
	{"license_expiry", []string{"license_expiry", "license expiry", "licence expiry"}},
}

// optionalFields resolve to the empty string when absent; that is never
// an error.
var optionalFields = []fieldSpec{
	{"date_of_birth", []string{"date_of_birth", "date of birth", "dob"}},
	{"irp_type", []string{"irp_type", "irp type"}},
	{"irp_expiry", []string{"irp_expiry", "irp expiry"}},
}

// Error-value strings some spreadsheet tools leave in cells; they count
// as blank.
var naSentinels = []string{"#N/A", "#VALUE!", "#REF!", "#DIV/0!", "NaN"}

// ResolveFields maps raw sheet labels onto the canonical schema. raw keys
// must already be lower-cased and trimmed. Required fields that resolve
// to no label at all fail with MissingFieldError; required fields whose
// cell cleans down to nothing fail with EmptyFieldError.
func ResolveFields(raw map[string]string) (map[string]string, error) {
	fields := make(map[string]string, len(requiredFields)+len(optionalFields))

	for _, spec := range requiredFields {
		value, ok := firstPresent(raw, spec.Aliases)
		if !ok {
			return nil, &MissingFieldError{Field: spec.Name, Aliases: spec.Aliases}
		}
		fields[spec.Name] = value
	}

	for _, spec := range optionalFields {
		value, _ := firstPresent(raw, spec.Aliases)
		fields[spec.Name] = value
	}

	// The alias may exist while the cell is blank; catch that here.
	for _, spec := range requiredFields {
		if fields[spec.Name] == "" {
			return nil, &EmptyFieldError{Field: spec.Name}
		}
	}

	return fields, nil
}

// firstPresent returns the cleaned value of the first alias that exists
// as a label in raw. Presence is judged on the label, not the value, so
// a blank cell still counts as present.
func firstPresent(raw map[string]string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if value, ok := raw[strings.ToLower(alias)]; ok {
			return cleanValue(value), true
		}
	}
	return "", false
}

// cleanValue trims cell text and collapses spreadsheet NA sentinels to
// the empty string.
func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	for _, na := range naSentinels {
		if strings.EqualFold(value, na) {
			return ""
		}
	}
	return value
}
