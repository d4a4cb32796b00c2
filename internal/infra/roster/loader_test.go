package roster

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pace_af_tool/internal/domain/member"
)

const csvHeader = "FULL_NAME,GRADE,ASSIGNED_PAS_CLEARTEXT,DAFSC,DOR,DATE_ARRIVED_STATION,TAFMSD,REENL_ELIG_STATUS,ASSIGNED_PAS,PAFSC,GRADE_PERM_PROJ,UIF_CODE,UIF_DISPOSITION_DATE,2AFSC,3AFSC,4AFSC"

func TestReadCSV(t *testing.T) {
	data := csvHeader + "\n" +
		"\"DOE, JANE\",SSG,51 FSS,3D137,01-Jan-2022,15-May-2024,01-Jun-2014,1A,AA1,3D137,,,,,,\n" +
		"\"ROE, RICHARD\",SSG,51 MXS,3D135,44562,45427,41791,4H,BB2,3D135,TSG,2,01-Jan-2025,3D177,,\n"

	records, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "DOE, JANE", first.FullName)
	assert.Equal(t, member.GradeSSG, first.Grade)
	assert.Equal(t, member.Grade(""), first.ProjectedGrade)
	assert.Equal(t, "01-Jan-2022", first.DateOfRank)
	assert.Nil(t, first.UIFCode)
	assert.Nil(t, first.UIFDispositionDate)
	assert.Equal(t, "AA1", first.AssignedPAS)
	assert.Equal(t, "51 FSS", first.PASCleartext)

	// Serial-valued cells keep their numeric form for the normalizer.
	second := records[1]
	assert.Equal(t, float64(44562), second.DateOfRank)
	assert.Equal(t, float64(45427), second.DateArrivedStation)
	assert.Equal(t, float64(41791), second.TAFMSD)
	assert.Equal(t, float64(2), second.UIFCode)
	assert.Equal(t, "01-Jan-2025", second.UIFDispositionDate)
	assert.Equal(t, member.GradeTSG, second.ProjectedGrade)
	assert.Equal(t, "3D177", second.AFSC2)
}

func TestReadCSV_MissingRequiredColumns(t *testing.T) {
	data := "FULL_NAME,GRADE,DOR\n\"DOE, JANE\",SSG,01-Jan-2022\n"

	_, err := ReadCSV(strings.NewReader(data))
	require.Error(t, err)

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Columns, "TAFMSD")
	assert.Contains(t, missing.Columns, "ASSIGNED_PAS")
	assert.NotContains(t, missing.Columns, "FULL_NAME")
	assert.Contains(t, err.Error(), "TAFMSD")
}

func TestReadCSV_OptionalColumnsMayBeAbsent(t *testing.T) {
	data := "FULL_NAME,GRADE,ASSIGNED_PAS_CLEARTEXT,DAFSC,DOR,DATE_ARRIVED_STATION,TAFMSD,REENL_ELIG_STATUS,ASSIGNED_PAS,PAFSC\n" +
		"\"DOE, JANE\",SSG,51 FSS,3D137,01-Jan-2022,15-May-2024,01-Jun-2014,1A,AA1,3D137\n"

	records, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, member.Grade(""), records[0].ProjectedGrade)
	assert.Nil(t, records[0].UIFCode)
	assert.Empty(t, records[0].AFSC2)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := strings.Split(csvHeader, ",")
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	row := []any{"DOE, JANE", "SSG", "51 FSS", "3D137", 44562, 45427, 41791, "1A", "AA1", "3D137"}
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "DOE, JANE", rec.FullName)
	assert.Equal(t, member.GradeSSG, rec.Grade)
	assert.Equal(t, float64(44562), rec.DateOfRank)
	assert.Equal(t, float64(45427), rec.DateArrivedStation)
	assert.Equal(t, float64(41791), rec.TAFMSD)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("roster.pdf")
	assert.Error(t, err)
}
