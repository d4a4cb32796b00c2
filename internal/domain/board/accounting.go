package board

import (
	"time"

	"pace_af_tool/internal/domain/member"
)

// Days between the accounting date and the closeout date. Administrative
// processing lag fixed by regulation.
const accountingOffsetDays = 119

// AccountingDate returns the latest arrival-at-station date that still
// admits a member to the cycle: the closeout date minus the fixed offset,
// snapped to the 3rd of the resulting month at end of day.
func AccountingDate(grade member.Grade, year int) (time.Time, error) {
	r, ok := gradeRules[grade]
	if !ok {
		return time.Time{}, ErrUnknownGrade
	}
	d := closeoutDate(r, year).AddDate(0, 0, -accountingOffsetDays)
	return time.Date(d.Year(), d.Month(), 3, 23, 59, 59, 0, time.UTC), nil
}

// MeetsAccountingDate reports whether a member who arrived on station on
// the given date is administratively attached early enough to be
// considered in the cycle. A zero arrival date (absent) never qualifies,
// and neither does an unknown grade.
func MeetsAccountingDate(arrived time.Time, grade member.Grade, year int) bool {
	if arrived.IsZero() {
		return false
	}
	cutoff, err := AccountingDate(grade, year)
	if err != nil {
		return false
	}
	return !arrived.After(cutoff)
}
