package board

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pace_af_tool/internal/domain/member"
)

// Reasons reported on verdicts. Downstream reporting expects exactly one
// reason string per ineligible/discrepancy member.
const (
	reasonMissingDate     = "Required date missing or unreadable."
	reasonJuniorAirman    = "Failed A1C Check."
	reasonOverServiceCap  = "Over 36 months TIS."
	reasonHigherTenure    = "Higher tenure."
	reasonSkillLevel      = "Insufficient PAFSC skill level."
	reasonProcessingError = "Error processing data"
)

// Higher-tenure extension window currently in force. A standard HYT date
// landing strictly inside the window is recomputed with the grade's
// extended limit.
var (
	defaultHYTExceptionStart = time.Date(2023, time.December, 8, 0, 0, 0, 0, time.UTC)
	defaultHYTExceptionEnd   = time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
)

// Input is everything the board filter needs to evaluate one member.
// Dates are already normalized; the zero time means absent or unreadable.
type Input struct {
	Grade            member.Grade
	Year             int // cycle year
	DateOfRank       time.Time
	TAFMSD           time.Time
	UIFCode          any // raw cell; normalized to an integer here
	UIFDisposition   time.Time
	ReenlistmentCode string
	AFSCs            [4]string // primary specialty code first
}

// Filter evaluates the board eligibility rule chain. It holds the
// higher-tenure exception window so a policy override can shift it without
// touching the static grade tables. Safe for concurrent use.
type Filter struct {
	hytExceptionStart time.Time
	hytExceptionEnd   time.Time
}

// NewFilter returns a Filter with an explicit higher-tenure exception
// window.
func NewFilter(hytExceptionStart, hytExceptionEnd time.Time) *Filter {
	return &Filter{hytExceptionStart: hytExceptionStart, hytExceptionEnd: hytExceptionEnd}
}

// DefaultFilter returns a Filter using the exception window currently set
// by regulation.
func DefaultFilter() *Filter {
	return NewFilter(defaultHYTExceptionStart, defaultHYTExceptionEnd)
}

// Evaluate runs the ordered rule chain for one member and returns a
// Verdict. It never panics: an unexpected fault inside the chain is
// converted to an ineligible verdict so one bad record cannot abort a
// roster pass.
func (f *Filter) Evaluate(in Input) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v = ineligible(reasonProcessingError)
		}
	}()
	return f.evaluate(in)
}

func (f *Filter) evaluate(in Input) Verdict {
	if in.DateOfRank.IsZero() || in.TAFMSD.IsZero() {
		return ineligible(reasonMissingDate)
	}

	prof, err := ProfileFor(in.Grade, in.Year)
	if err != nil {
		return ineligible(reasonProcessingError)
	}

	// A1C promotion has its own window arithmetic with a tri-state
	// outcome; an ambiguous standard window falls through to the
	// below-the-zone track, and failing both drops the member from board
	// consideration entirely.
	btz := false
	if in.Grade == member.GradeA1C {
		switch sub := juniorAirmanCheck(in.DateOfRank, in.Year); sub.Status {
		case StatusIneligible, StatusNotApplicable:
			return sub
		case StatusEligibleBTZ:
			btz = true
		}
	}

	if in.Grade == member.GradeAB || in.Grade == member.GradeAMN || in.Grade == member.GradeA1C {
		if !addMonths(in.TAFMSD, 36).After(prof.Closeout) {
			return ineligible(reasonOverServiceCap)
		}
	}

	if in.DateOfRank.After(prof.TIGCutoff) {
		return ineligible(fmt.Sprintf("TIG: < %d months", prof.TIGMonths))
	}

	if in.TAFMSD.After(prof.TISRequiredBy) {
		return ineligible("TIS < " + formatServiceSpan(prof.TISMonths))
	}

	hyt := addYears(in.TAFMSD, prof.HYTYears)
	if hyt.After(f.hytExceptionStart) && hyt.Before(f.hytExceptionEnd) {
		hyt = addYears(in.TAFMSD, prof.HYTExcYears)
	}
	if hyt.Before(prof.MDOS) {
		return ineligible(reasonHigherTenure)
	}

	if code := normalizeUIFCode(in.UIFCode); code > 1 {
		if !in.UIFDisposition.IsZero() && in.UIFDisposition.Before(prof.Closeout) {
			return discrepancy(fmt.Sprintf("UIF code: %d", code))
		}
	}

	reCode := strings.ToUpper(strings.TrimSpace(in.ReenlistmentCode))
	if desc := ReenlistmentCodeDescription(reCode); desc != "" {
		return discrepancy(reCode + ": " + desc)
	}

	if in.Grade != member.GradeMSG && in.Grade != member.GradeSMS {
		if !meetsSkillLevel(prof.SkillLevel, in.AFSCs) {
			return discrepancy(reasonSkillLevel)
		}
	}

	if btz {
		return eligibleBTZ()
	}
	return eligible()
}

// juniorAirmanCheck evaluates the A1C promotion window: date of rank plus
// 28 months against the 1 February cutoff and the SRA closeout. On or
// before the cutoff is standard eligibility; inside the cutoff-to-closeout
// window the member has not yet met the standard window; past the closeout
// the standard test is ambiguous and the below-the-zone window (date of
// rank plus 22 months, on or before the closeout) decides.
func juniorAirmanCheck(dateOfRank time.Time, year int) Verdict {
	scod := closeoutDate(gradeRules[member.GradeSRA], year)
	cutoff := time.Date(scod.Year(), time.February, 1, 0, 0, 0, 0, time.UTC)

	standard := addMonths(dateOfRank, 28)
	switch {
	case !standard.After(cutoff):
		return eligible()
	case !standard.After(scod):
		return ineligible(reasonJuniorAirman)
	}

	if btzDate := addMonths(dateOfRank, 22); !btzDate.After(scod) {
		return eligibleBTZ()
	}
	return notApplicable()
}

// meetsSkillLevel reports whether any of the member's specialty codes
// carries a skill-level digit at or above the required one. A primary code
// in the 8xxx/9xxx special-duty family is exempt from the check. The digit
// sits one position later in codes carrying an alphabetic or dash prefix.
func meetsSkillLevel(required byte, afscs [4]string) bool {
	if p := afscs[0]; p != "" && (p[0] == '8' || p[0] == '9') {
		return true
	}
	for _, code := range afscs {
		if len(code) < 5 {
			continue
		}
		idx := 4
		if isAlpha(code[0]) || code[0] == '-' {
			idx = 5
		}
		if idx < len(code) && code[idx] >= required {
			return true
		}
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// normalizeUIFCode coerces the raw UIF cell into an integer, defaulting to
// 0 for blank or malformed values. Spreadsheets deliver the column as
// text, integers, or floats interchangeably.
func normalizeUIFCode(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if fl, err := strconv.ParseFloat(s, 64); err == nil {
			return int(fl)
		}
		return 0
	default:
		return 0
	}
}

// formatServiceSpan renders a month count the way the eligibility chart
// does: whole years where possible, months for the sub-year grades.
func formatServiceSpan(months int) string {
	if months%12 == 0 {
		return fmt.Sprintf("%d years", months/12)
	}
	return fmt.Sprintf("%d months", months)
}
