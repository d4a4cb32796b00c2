// Package board implements the promotion-board eligibility rules: the
// grade-indexed regulatory tables, the accounting-date gate, and the
// board-filter rule chain that classifies one member at a time.
package board

import (
	"errors"
	"time"

	"pace_af_tool/internal/domain/member"
)

// ErrUnknownGrade is returned when no regulatory data exists for a grade.
var ErrUnknownGrade = errors.New("no regulatory profile for grade")

// gradeRule holds the static, per-grade regulatory constants from the
// promotion eligibility chart. Day-of-month for the TIG and MDOS bases is
// always the 1st.
type gradeRule struct {
	closeoutMonth time.Month // SCOD month
	closeoutDay   int        // SCOD day
	tigBaseMonth  time.Month // DOR requirement base
	tigMonths     int        // time in grade required
	tisMonths     int        // total service required
	mdosBaseMonth time.Month
	hytYears      int  // standard higher-tenure limit
	hytExcYears   int  // extended higher-tenure limit
	skillLevel    byte // required AFSC skill-level digit
}

var gradeRules = map[member.Grade]gradeRule{
	member.GradeAB:  {time.March, 31, time.February, 6, 3, time.September, 6, 8, '3'},
	member.GradeAMN: {time.March, 31, time.February, 6, 6, time.September, 6, 8, '3'},
	member.GradeA1C: {time.March, 31, time.February, 10, 15, time.September, 8, 10, '3'},
	member.GradeSRA: {time.March, 31, time.February, 6, 36, time.September, 10, 12, '5'},
	member.GradeSSG: {time.January, 31, time.August, 23, 60, time.August, 20, 22, '7'},
	member.GradeTSG: {time.November, 30, time.July, 24, 96, time.August, 22, 24, '7'},
	member.GradeMSG: {time.September, 30, time.July, 20, 132, time.April, 24, 26, '7'},
	member.GradeSMS: {time.July, 31, time.March, 21, 168, time.January, 26, 28, '9'},
}

// reenlistmentCodes maps each disqualifying RE status code to its
// description. A member carrying one of these is flagged for review.
var reenlistmentCodes = map[string]string{
	"2A": "AFPC Denied Reenlistment",
	"2B": "Discharged, General.",
	"2C": "Involuntary separation.",
	"2F": "Undergoing Rehab",
	"2G": "Substance Abuse, Drugs",
	"2H": "Substance Abuse, Alcohol",
	"2J": "Under investigation",
	"2K": "Involuntary Separation.",
	"2M": "Sentenced under UCMJ",
	"2P": "AWOL; deserter.",
	"2W": "Retired and recalled to AD",
	"2X": "Not selected for Reenlistment.",
	"4H": "Article 15.",
	"4I": "Control Roster.",
	"4L": "Separated, Commissioning program.",
	"4M": "Breach of enlistment.",
	"4N": "Convicted, Civil Court.",
}

// Profile carries the dated regulatory constants for one (grade, cycle
// year) pair. Derived once, never mutated.
type Profile struct {
	Grade         member.Grade
	Closeout      time.Time // SCOD, year-adjusted
	TIGCutoff     time.Time // latest admissible date of rank
	TIGMonths     int
	TISRequiredBy time.Time // latest admissible TAFMSD
	TISMonths     int
	MDOS          time.Time
	HYTYears      int
	HYTExcYears   int
	SkillLevel    byte
}

// closeoutDate resolves the cycle's closeout. Grades whose closeout month
// falls in the first calendar quarter close out in the year after the
// cycle year.
func closeoutDate(r gradeRule, year int) time.Time {
	if r.closeoutMonth <= time.March {
		year++
	}
	return time.Date(year, r.closeoutMonth, r.closeoutDay, 0, 0, 0, 0, time.UTC)
}

// ProfileFor derives the regulatory profile for one grade and cycle year.
func ProfileFor(grade member.Grade, year int) (Profile, error) {
	r, ok := gradeRules[grade]
	if !ok {
		return Profile{}, ErrUnknownGrade
	}

	// TIG and TIS requirements count back from the grade's selection-month
	// base in the year following the cycle year.
	tigBase := time.Date(year+1, r.tigBaseMonth, 1, 0, 0, 0, 0, time.UTC)

	return Profile{
		Grade:         grade,
		Closeout:      closeoutDate(r, year),
		TIGCutoff:     addMonths(tigBase, -r.tigMonths),
		TIGMonths:     r.tigMonths,
		TISRequiredBy: addMonths(tigBase, -r.tisMonths),
		TISMonths:     r.tisMonths,
		MDOS:          time.Date(year+1, r.mdosBaseMonth, 1, 0, 0, 0, 0, time.UTC),
		HYTYears:      r.hytYears,
		HYTExcYears:   r.hytExcYears,
		SkillLevel:    r.skillLevel,
	}, nil
}

// ReenlistmentCodeDescription returns the description of a disqualifying
// RE status code, or "" if the code is not disqualifying.
func ReenlistmentCodeDescription(code string) string {
	return reenlistmentCodes[code]
}

// addMonths shifts t by a whole number of months, clamping to the last day
// of the target month instead of rolling overflow into the next month the
// way time.AddDate does (31 Oct + 4 months must land on the end of
// February, not 2-3 March).
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	shifted := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	last := daysIn(shifted.Year(), shifted.Month())
	if d > last {
		d = last
	}
	return time.Date(shifted.Year(), shifted.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// addYears shifts t by whole years with the same end-of-month clamping
// (29 Feb + n years lands on 28 Feb in a common year).
func addYears(t time.Time, years int) time.Time {
	return addMonths(t, years*12)
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
