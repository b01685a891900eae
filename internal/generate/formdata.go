// Package generate assembles the value mapping a fillable template
// expects and decides where a record's documents live on disk.
package generate

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"time"

	"github.com/VolodymyrVolynets/domFD/internal/config"
	"github.com/VolodymyrVolynets/domFD/internal/employee"
)

// FormValues builds the field name → value mapping for the printable
// form. Dates render as DD/MM/YYYY, an absent date of birth renders as
// the empty string, and next_date is the day after ref.
func FormValues(e *employee.Employee, s *config.Settings, ref time.Time) map[string]string {
	dateOfBirth := ""
	if !e.DateOfBirth.IsZero() {
		dateOfBirth = e.DateOfBirth.Format(config.DateLayout)
	}

	return map[string]string{
		"store_manager_name": s.Get(config.KeyStoreManagerName),
		"franchise_name":     s.Get(config.KeyFranchiseName),
		"shop_name":          s.Get(config.KeyShopName),

		"employee_name": e.FirstName + " " + e.LastName,
		"first_name":    e.FirstName,
		"last_name":     e.LastName,
		"title":         e.Title(),
		"address":       e.Address,
		"phone_number":  e.PhoneNumber,
		"date_of_birth": dateOfBirth,
		"employee_age":  strconv.Itoa(e.Age()),

		"car_make":       e.CarMake,
		"car_model":      e.CarModel,
		"car_reg":        e.CarReg,
		"penalty_points": strconv.Itoa(e.PenaltyPoints),

		"date":      ref.Format(config.DateLayout),
		"next_date": ref.AddDate(0, 0, 1).Format(config.DateLayout),
		"time":      RandomVisitTime(),
	}
}

// RandomVisitTime picks an HH:MM between 12:00 and 16:00 inclusive.
// The minute is forced to 0 when the hour lands on 16 so the time never
// passes the upper bound.
func RandomVisitTime() string {
	hour := 12 + rand.Intn(5)
	minute := 0
	if hour != 16 {
		minute = rand.Intn(60)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// OutputDirFor returns the per-record output directory under base.
func OutputDirFor(e *employee.Employee, base string) string {
	return filepath.Join(base, e.FirstName+" "+e.LastName)
}
