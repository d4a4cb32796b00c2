package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pace_af_tool/internal/domain/member"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProfileFor_SSG(t *testing.T) {
	p, err := ProfileFor(member.GradeSSG, 2025)
	require.NoError(t, err)

	// January closeout rolls into the year after the cycle year.
	assert.Equal(t, date(2026, time.January, 31), p.Closeout)
	// 1 Aug 2026 base minus 23 months.
	assert.Equal(t, date(2024, time.September, 1), p.TIGCutoff)
	// Same base minus 5 years of service.
	assert.Equal(t, date(2021, time.August, 1), p.TISRequiredBy)
	assert.Equal(t, date(2026, time.August, 1), p.MDOS)
	assert.Equal(t, 20, p.HYTYears)
	assert.Equal(t, 22, p.HYTExcYears)
	assert.Equal(t, byte('7'), p.SkillLevel)
}

func TestProfileFor_CloseoutYearAdjustment(t *testing.T) {
	tests := []struct {
		grade member.Grade
		want  time.Time
	}{
		{member.GradeAB, date(2026, time.March, 31)},   // Q1 closeout -> next year
		{member.GradeSRA, date(2026, time.March, 31)},  // Q1 closeout -> next year
		{member.GradeSSG, date(2026, time.January, 31)},
		{member.GradeTSG, date(2025, time.November, 30)}, // Q4 stays in cycle year
		{member.GradeMSG, date(2025, time.September, 30)},
		{member.GradeSMS, date(2025, time.July, 31)},
	}
	for _, tt := range tests {
		t.Run(string(tt.grade), func(t *testing.T) {
			p, err := ProfileFor(tt.grade, 2025)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Closeout)
		})
	}
}

func TestProfileFor_SubYearServiceRequirement(t *testing.T) {
	p, err := ProfileFor(member.GradeA1C, 2025)
	require.NoError(t, err)

	// 1 Feb 2026 base minus 15 months.
	assert.Equal(t, date(2024, time.November, 1), p.TISRequiredBy)
	assert.Equal(t, 15, p.TISMonths)
}

func TestProfileFor_UnknownGrade(t *testing.T) {
	_, err := ProfileFor(member.GradeCMS, 2025)
	assert.ErrorIs(t, err, ErrUnknownGrade)

	_, err = ProfileFor(member.Grade("CPT"), 2025)
	assert.ErrorIs(t, err, ErrUnknownGrade)
}

func TestAddMonths_ClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain shift", date(2022, time.January, 1), 28, date(2024, time.May, 1)},
		{"into leap february", date(2023, time.October, 31), 4, date(2024, time.February, 29)},
		{"into common february", date(2022, time.October, 31), 4, date(2023, time.February, 28)},
		{"backwards", date(2026, time.August, 1), -23, date(2024, time.September, 1)},
		{"year boundary", date(2023, time.December, 15), 2, date(2024, time.February, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, addMonths(tt.start, tt.months))
		})
	}
}

func TestAddYears_LeapDay(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 28), addYears(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2028, time.February, 29), addYears(date(2024, time.February, 29), 4))
}

func TestReenlistmentCodeDescription(t *testing.T) {
	assert.Equal(t, "Article 15.", ReenlistmentCodeDescription("4H"))
	assert.Equal(t, "", ReenlistmentCodeDescription("1A"))
	assert.Equal(t, "", ReenlistmentCodeDescription(""))
}
