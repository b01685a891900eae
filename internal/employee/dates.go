package employee

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Cell text layouts accepted for dates, tried in order.
var dateLayouts = []string{"02/01/2006", "2006-01-02"}

// Serial bounds keep plain numbers (years, counters) from being mistaken
// for Excel date serials. 10000 ≈ 1927, 200000 ≈ 2447.
const (
	minDateSerial = 10000
	maxDateSerial = 200000
)

// ParseDate turns a raw cell value into a calendar date. Native date and
// datetime cells arrive as Excel serial numbers when the workbook is read
// raw; datetimes truncate to their date. Anything that is not a serial in
// a plausible range or a string in a supported layout reports absent.
// ParseDate never fails.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < minDateSerial || serial > maxDateSerial {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return truncateToDay(t), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths adds calendar months to t, preserving the day of month and
// clamping to the last valid day of the target month, so Jan 31 plus one
// month lands on Feb 28 (or Feb 29 in a leap year).
func AddMonths(t time.Time, months int) time.Time {
	year := t.Year()
	month := int(t.Month()) - 1 + months
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}

	day := t.Day()
	if last := daysIn(year, time.Month(month+1)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, t.Location())
}

// daysIn reports the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
