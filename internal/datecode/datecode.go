// Package datecode parses the 8-digit YYYYMMDD date codes that key every
// daily entry on the site and renders them for display.
package datecode

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a code is not a valid calendar date.
var ErrInvalidDate = errors.New("invalid date code")

// monthNames is the fixed display table, indexed 1-12.
var monthNames = [13]string{
	"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Date is a validated calendar date. The zero value is not valid; construct
// through Parse.
type Date struct {
	year  int
	month int
	day   int
}

// IsCode reports whether s has the canonical date-code shape: exactly 8
// ASCII digits. It says nothing about calendar validity.
func IsCode(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Parse validates a YYYYMMDD code as a Gregorian calendar date (month 1-12,
// day valid for that month and year, leap years included) and returns it.
func Parse(code string) (Date, error) {
	if !IsCode(code) {
		return Date{}, fmt.Errorf("%w: %q is not 8 digits", ErrInvalidDate, code)
	}
	t, err := time.Parse("20060102", code)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, code)
	}
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}, nil
}

// Code returns the canonical zero-padded YYYYMMDD form.
func (d Date) Code() string {
	return fmt.Sprintf("%04d%02d%02d", d.year, d.month, d.day)
}

// Display renders the date as "<MonthName> <Day>, <Year>" with no zero
// padding on the day.
func (d Date) Display() string {
	return fmt.Sprintf("%s %d, %d", monthNames[d.month], d.day, d.year)
}

func (d Date) String() string {
	return d.Code()
}
