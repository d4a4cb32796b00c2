package member

// Grade is an Air Force rank code as it appears in personnel rosters.
type Grade string

// Enlisted grades, junior to senior.
const (
	GradeAB  Grade = "AB"  // E-1
	GradeAMN Grade = "AMN" // E-2
	GradeA1C Grade = "A1C" // E-3
	GradeSRA Grade = "SRA" // E-4
	GradeSSG Grade = "SSG" // E-5
	GradeTSG Grade = "TSG" // E-6
	GradeMSG Grade = "MSG" // E-7
	GradeSMS Grade = "SMS" // E-8
	GradeCMS Grade = "CMS" // E-9
)

var enlistedGrades = map[Grade]bool{
	GradeAB:  true,
	GradeAMN: true,
	GradeA1C: true,
	GradeSRA: true,
	GradeSSG: true,
	GradeTSG: true,
	GradeMSG: true,
	GradeSMS: true,
	GradeCMS: true,
}

var officerGrades = map[Grade]bool{
	"2LT": true, "1LT": true, "CPT": true, "MAJ": true, "LTC": true,
	"COL": true, "BG": true, "MG": true, "LTG": true, "GEN": true,
}

// promotionPath maps each promotable grade to the grade one step above it.
var promotionPath = map[Grade]Grade{
	GradeAB:  GradeAMN,
	GradeAMN: GradeA1C,
	GradeA1C: GradeSRA,
	GradeSRA: GradeSSG,
	GradeSSG: GradeTSG,
	GradeTSG: GradeMSG,
	GradeMSG: GradeSMS,
	GradeSMS: GradeCMS,
}

// IsEnlisted reports whether g is a recognized enlisted grade.
func IsEnlisted(g Grade) bool { return enlistedGrades[g] }

// IsOfficer reports whether g is an officer grade. Officers are screened out
// of enlisted promotion processing before any eligibility work happens.
func IsOfficer(g Grade) bool { return officerGrades[g] }

// NextGrade returns the grade one step above g, or "" if g has no promotion
// path (CMS, officers, unknown codes).
func NextGrade(g Grade) Grade { return promotionPath[g] }

// Record is one roster row for a promotion-cycle candidate.
//
// The four date fields keep the raw cell value as uploaded: personnel
// rosters mix calendar text, Excel serial numbers, and native timestamps
// in the same column, so normalization happens at evaluation time via the
// dates package. A nil or empty cell means the value is absent.
type Record struct {
	FullName           string
	Grade              Grade
	ProjectedGrade     Grade // GRADE_PERM_PROJ; "" when no grade change is in progress
	DateOfRank         any
	DateArrivedStation any
	TAFMSD             any
	UIFCode            any // small integer, frequently blank
	UIFDispositionDate any
	ReenlistmentCode   string
	PAFSC              string
	AFSC2              string
	AFSC3              string
	AFSC4              string
	DAFSC              string
	AssignedPAS        string // organizational unit code
	PASCleartext       string // unit display name
}
