package board

// Status is the outcome tag of one board-filter evaluation.
type Status string

const (
	// StatusEligible: the member meets every board requirement.
	StatusEligible Status = "ELIGIBLE"
	// StatusEligibleBTZ: eligible on the accelerated below-the-zone track.
	StatusEligibleBTZ Status = "ELIGIBLE_BTZ"
	// StatusDiscrepancy: eligible, but flagged for review (UIF, RE code,
	// or skill level); the reason carries the flag.
	StatusDiscrepancy Status = "ELIGIBLE_DISCREPANCY"
	// StatusIneligible: fails a board requirement; the reason says which.
	StatusIneligible Status = "INELIGIBLE"
	// StatusNotApplicable: excluded from board consideration entirely,
	// distinct from ineligible (no reason is reported).
	StatusNotApplicable Status = "NOT_APPLICABLE"
)

// Verdict is the board filter's output for one member: a status tag plus
// an optional human-readable reason. Produced fresh per evaluation and
// never mutated.
type Verdict struct {
	Status Status
	Reason string
}

func eligible() Verdict    { return Verdict{Status: StatusEligible} }
func eligibleBTZ() Verdict { return Verdict{Status: StatusEligibleBTZ} }

func discrepancy(reason string) Verdict { return Verdict{Status: StatusDiscrepancy, Reason: reason} }
func ineligible(reason string) Verdict  { return Verdict{Status: StatusIneligible, Reason: reason} }

func notApplicable() Verdict { return Verdict{Status: StatusNotApplicable} }
