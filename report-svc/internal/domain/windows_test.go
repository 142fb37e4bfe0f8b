package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowsAt(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		expectedWeek  string
		expectedMonth string
		expectedYear  string
		expectedStart string
	}{
		{
			name:          "midweek",
			now:           time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC),
			expectedWeek:  "2026-03-09",
			expectedMonth: "2026-03-01",
			expectedYear:  "2026-01-01",
			expectedStart: "2025-10-01",
		},
		{
			name:          "sunday_belongs_to_previous_monday",
			now:           time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC),
			expectedWeek:  "2026-03-09",
			expectedMonth: "2026-03-01",
			expectedYear:  "2026-01-01",
			expectedStart: "2025-10-01",
		},
		{
			name:          "monday_starts_week",
			now:           time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			expectedWeek:  "2026-06-01",
			expectedMonth: "2026-06-01",
			expectedYear:  "2026-01-01",
			expectedStart: "2026-01-01",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := WindowsAt(testCase.now, time.UTC)
			assert.Equal(t, testCase.expectedWeek, w.Week.Format("2006-01-02"))
			assert.Equal(t, testCase.expectedMonth, w.Month.Format("2006-01-02"))
			assert.Equal(t, testCase.expectedYear, w.Year.Format("2006-01-02"))
			assert.Equal(t, testCase.expectedStart, w.SeriesStart.Format("2006-01-02"))
		})
	}
}

func TestWindowsAt_UsesReportZone(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	// Sunday 20:00 UTC is already Monday in Bangkok.
	w := WindowsAt(time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC), bangkok)
	assert.Equal(t, "2026-03-16", w.Week.Format("2006-01-02"))
	assert.Equal(t, bangkok, w.Week.Location())
}

func TestFillSeries(t *testing.T) {
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	series := FillSeries(start, map[string]int64{"2025-11": 500, "2026-03": 295})

	assert.Equal(t, []MonthlyRevenue{
		{Month: "2025-10", Revenue: 0},
		{Month: "2025-11", Revenue: 500},
		{Month: "2025-12", Revenue: 0},
		{Month: "2026-01", Revenue: 0},
		{Month: "2026-02", Revenue: 0},
		{Month: "2026-03", Revenue: 295},
	}, series)
}
