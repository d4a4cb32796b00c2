// Package roster loads uploaded personnel rosters from CSV or XLSX files
// into member records, enforcing the required-column contract before any
// per-record processing begins.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"pace_af_tool/internal/domain/member"
)

// RequiredColumns must all be present in the header row; a roster missing
// any of them is rejected outright.
var RequiredColumns = []string{
	"FULL_NAME", "GRADE", "ASSIGNED_PAS_CLEARTEXT", "DAFSC", "DOR",
	"DATE_ARRIVED_STATION", "TAFMSD", "REENL_ELIG_STATUS", "ASSIGNED_PAS", "PAFSC",
}

// OptionalColumns are read when present and left blank otherwise.
var OptionalColumns = []string{
	"GRADE_PERM_PROJ", "UIF_CODE", "UIF_DISPOSITION_DATE", "2AFSC", "3AFSC", "4AFSC",
}

// Cells in these columns keep their numeric form when the sheet stores
// them as numbers (Excel serial dates, integer UIF codes).
var numericColumns = map[string]bool{
	"DOR": true, "DATE_ARRIVED_STATION": true, "TAFMSD": true,
	"UIF_DISPOSITION_DATE": true, "UIF_CODE": true,
}

// MissingColumnsError reports a structurally invalid roster.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// Load reads a roster file, dispatching on extension (.csv or .xlsx).
func Load(path string) ([]member.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open roster: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported roster file type: %s", filepath.Ext(path))
	}
}

// ReadCSV parses a CSV roster. The first row is the header.
func ReadCSV(r io.Reader) ([]member.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster CSV: %w", err)
	}
	return fromRows(rows)
}

// ReadXLSX parses the first sheet of an XLSX roster. Raw cell values are
// requested so date cells arrive as Excel serial numbers rather than
// locale-formatted text.
func ReadXLSX(path string) ([]member.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("roster workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read roster sheet: %w", err)
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) ([]member.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster contains no data")
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := header[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	records := make([]member.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(col string) string {
			idx, ok := header[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		records = append(records, member.Record{
			FullName:           cell("FULL_NAME"),
			Grade:              member.Grade(cell("GRADE")),
			ProjectedGrade:     member.Grade(cell("GRADE_PERM_PROJ")),
			DateOfRank:         rawCell(cell("DOR"), "DOR"),
			DateArrivedStation: rawCell(cell("DATE_ARRIVED_STATION"), "DATE_ARRIVED_STATION"),
			TAFMSD:             rawCell(cell("TAFMSD"), "TAFMSD"),
			UIFCode:            rawCell(cell("UIF_CODE"), "UIF_CODE"),
			UIFDispositionDate: rawCell(cell("UIF_DISPOSITION_DATE"), "UIF_DISPOSITION_DATE"),
			ReenlistmentCode:   cell("REENL_ELIG_STATUS"),
			PAFSC:              cell("PAFSC"),
			AFSC2:              cell("2AFSC"),
			AFSC3:              cell("3AFSC"),
			AFSC4:              cell("4AFSC"),
			DAFSC:              cell("DAFSC"),
			AssignedPAS:        cell("ASSIGNED_PAS"),
			PASCleartext:       cell("ASSIGNED_PAS_CLEARTEXT"),
		})
	}
	return records, nil
}

// rawCell restores the numeric form for columns that Excel stores as
// numbers, so serial dates reach the normalizer as numbers and not digit
// strings. Empty cells become nil (absent).
func rawCell(value, column string) any {
	if value == "" {
		return nil
	}
	if numericColumns[column] {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return value
}
