// Package dates normalizes the heterogeneous date representations found in
// uploaded personnel rosters into a single canonical form.
package dates

import (
	"errors"
	"math"
	"strings"
	"time"
)

// ErrUnparseable is returned when a non-empty value cannot be interpreted
// as a calendar date in any supported representation.
var ErrUnparseable = errors.New("value is not a recognizable date")

// Excel stores dates as day counts from this epoch (the 1900 date system
// with its leap-year bug already folded in).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Serial values outside this window are treated as ordinary numbers, not
// dates. 2958465 is 31-Dec-9999.
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// Layouts accepted for date text, most common roster format first.
var textLayouts = []string{
	"02-Jan-2006",
	"2-Jan-2006",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"January 2, 2006",
	time.RFC3339,
}

// Normalize converts a raw roster cell into a calendar date.
//
// Structured time values pass through unchanged. Numbers in the plausible
// Excel serial range are days since the 1899-12-30 epoch. Strings are tried
// against the supported layouts (month names match case-insensitively).
//
// An empty or nil cell returns the zero time and a nil error: absence is
// not a fault. Everything else returns the zero time and ErrUnparseable.
// Normalize never panics.
func Normalize(value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, nil
		}
		return *v, nil
	case float64:
		return fromSerial(v)
	case float32:
		return fromSerial(float64(v))
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, nil
		}
		for _, layout := range textLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, ErrUnparseable
	default:
		return time.Time{}, ErrUnparseable
	}
}

func fromSerial(serial float64) (time.Time, error) {
	if math.IsNaN(serial) || serial < minExcelSerial || serial > maxExcelSerial {
		return time.Time{}, ErrUnparseable
	}
	days, frac := math.Modf(serial)
	t := excelEpoch.AddDate(0, 0, int(days))
	if frac > 0 {
		t = t.Add(time.Duration(frac * 24 * float64(time.Hour)))
	}
	return t, nil
}
