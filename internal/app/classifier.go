// Package app wires the domain rules into roster-level operations.
package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pace_af_tool/internal/domain/board"
	"pace_af_tool/internal/domain/dates"
	"pace_af_tool/internal/domain/member"
)

// Classification is the aggregate result of one roster pass for one
// (cycle grade, year). The index sets refer to positions in the input
// roster. Immutable once returned.
type Classification struct {
	Eligible          []int
	BelowTheZone      []int
	Ineligible        []int
	Discrepancy       []int // subset of Eligible, flagged for review
	SmallUnitEligible []int

	// UnitNames maps each unit code encountered to its display name.
	UnitNames map[string]string
	// Reasons maps member index to the ineligibility or discrepancy
	// reason. Exactly one reason per flagged member.
	Reasons map[int]string
	// Warnings collects row-level diagnostics (parse failures, skipped
	// ranks, missing data).
	Warnings []string
}

// RosterClassifier applies the board filter across an entire roster and
// partitions members into eligibility buckets. Stateless between calls;
// independent rosters may be classified concurrently.
type RosterClassifier struct {
	filter             *board.Filter
	smallUnitThreshold int
	log                *logrus.Logger
}

// NewRosterClassifier builds a classifier. A unit whose eligible count is
// at or below smallUnitThreshold reports on the small-unit template.
func NewRosterClassifier(filter *board.Filter, smallUnitThreshold int, log *logrus.Logger) *RosterClassifier {
	return &RosterClassifier{
		filter:             filter,
		smallUnitThreshold: smallUnitThreshold,
		log:                log,
	}
}

// Classify runs one promotion-cycle pass over the roster. It fails only
// when the cycle grade itself has no regulatory profile; every per-record
// fault is absorbed into the classification buckets or the warning list.
func (c *RosterClassifier) Classify(roster []member.Record, cycle member.Grade, year int) (*Classification, error) {
	if _, err := board.ProfileFor(cycle, year); err != nil {
		return nil, fmt.Errorf("unsupported promotion cycle grade %q: %w", cycle, err)
	}

	log := c.log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"cycle":  cycle,
		"year":   year,
	})
	log.WithField("records", len(roster)).Info("roster classification started")

	res := &Classification{
		UnitNames: make(map[string]string),
		Reasons:   make(map[int]string),
	}
	unitEligible := make(map[string]int)

	for i := range roster {
		rec := &roster[i]

		if member.IsOfficer(rec.Grade) {
			res.warnf("Officer %s (%s) excluded from enlisted promotion processing", rec.FullName, rec.Grade)
			continue
		}
		if !member.IsEnlisted(rec.Grade) {
			res.warnf("Unknown or unsupported rank: %s for %s", rec.Grade, rec.FullName)
			continue
		}

		// A projected grade one step above the cycle means the promotion
		// is already in progress; the member drops out silently.
		if rec.ProjectedGrade != "" && rec.ProjectedGrade == member.NextGrade(cycle) {
			continue
		}
		if !(rec.Grade == cycle || rec.ProjectedGrade == cycle ||
			(rec.Grade == member.GradeA1C && cycle == member.GradeSRA)) {
			continue
		}

		arrived := c.normalizeDate(res, rec.FullName, rec.DateArrivedStation)
		if !board.MeetsAccountingDate(arrived, cycle, year) {
			continue
		}

		if missing := missingRequiredField(rec); missing != "" {
			res.warnf("Missing required data at row %d, column %s", i, missing)
			res.Ineligible = append(res.Ineligible, i)
			res.Reasons[i] = "Missing required data"
			continue
		}

		if rec.ProjectedGrade == cycle {
			res.Ineligible = append(res.Ineligible, i)
			res.Reasons[i] = fmt.Sprintf("Projected for %s.", cycle)
			continue
		}

		if _, seen := res.UnitNames[rec.AssignedPAS]; !seen {
			res.UnitNames[rec.AssignedPAS] = rec.PASCleartext
		}

		verdict := c.filter.Evaluate(board.Input{
			Grade:            rec.Grade,
			Year:             year,
			DateOfRank:       c.normalizeDate(res, rec.FullName, rec.DateOfRank),
			TAFMSD:           c.normalizeDate(res, rec.FullName, rec.TAFMSD),
			UIFCode:          rec.UIFCode,
			UIFDisposition:   c.normalizeDate(res, rec.FullName, rec.UIFDispositionDate),
			ReenlistmentCode: rec.ReenlistmentCode,
			AFSCs:            [4]string{rec.PAFSC, rec.AFSC2, rec.AFSC3, rec.AFSC4},
		})

		switch verdict.Status {
		case board.StatusNotApplicable:
			// Outside board consideration entirely.
		case board.StatusEligible:
			res.Eligible = append(res.Eligible, i)
			unitEligible[rec.AssignedPAS]++
		case board.StatusDiscrepancy:
			res.Eligible = append(res.Eligible, i)
			res.Discrepancy = append(res.Discrepancy, i)
			res.Reasons[i] = verdict.Reason
			unitEligible[rec.AssignedPAS]++
		case board.StatusEligibleBTZ:
			res.BelowTheZone = append(res.BelowTheZone, i)
		case board.StatusIneligible:
			res.Ineligible = append(res.Ineligible, i)
			res.Reasons[i] = verdict.Reason
		}
	}

	// Senior cycles report every unit on the small-unit template; below
	// that the eligible head count decides.
	smallUnits := make(map[string]bool)
	for pas, n := range unitEligible {
		if cycle == member.GradeMSG || cycle == member.GradeSMS || n <= c.smallUnitThreshold {
			smallUnits[pas] = true
		}
	}
	for _, i := range res.Eligible {
		if smallUnits[roster[i].AssignedPAS] {
			res.SmallUnitEligible = append(res.SmallUnitEligible, i)
		}
	}

	log.WithFields(logrus.Fields{
		"eligible":    len(res.Eligible),
		"btz":         len(res.BelowTheZone),
		"ineligible":  len(res.Ineligible),
		"discrepancy": len(res.Discrepancy),
		"small_unit":  len(res.SmallUnitEligible),
		"units":       len(res.UnitNames),
		"warnings":    len(res.Warnings),
	}).Info("roster classification finished")

	return res, nil
}

// normalizeDate runs a raw cell through the date normalizer, recording a
// diagnostic with the member's name when the value is present but
// unreadable. Absent and unreadable values both come back as the zero
// time; the rules engine treats them identically.
func (c *RosterClassifier) normalizeDate(res *Classification, fullName string, value any) time.Time {
	parsed, err := dates.Normalize(value)
	if err != nil {
		res.warnf("Date parsing failed for %s: '%v'", fullName, value)
	}
	return parsed
}

func missingRequiredField(rec *member.Record) string {
	switch {
	case rec.FullName == "":
		return "FULL_NAME"
	case rec.AssignedPAS == "":
		return "ASSIGNED_PAS"
	case rec.PASCleartext == "":
		return "ASSIGNED_PAS_CLEARTEXT"
	case rec.DAFSC == "":
		return "DAFSC"
	case rec.PAFSC == "":
		return "PAFSC"
	case rec.ReenlistmentCode == "":
		return "REENL_ELIG_STATUS"
	}
	return ""
}

func (r *Classification) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
