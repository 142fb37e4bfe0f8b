package domain

import "time"

// Windows holds the start of each reporting window, all in the report zone.
type Windows struct {
	Week        time.Time
	Month       time.Time
	Year        time.Time
	SeriesStart time.Time
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WindowsAt computes calendar windows around now in loc. Weeks start on Monday.
func WindowsAt(now time.Time, loc *time.Location) Windows {
	now = now.In(loc)
	day := startOfDay(now)
	offset := (int(day.Weekday()) + 6) % 7

	y, m, _ := now.Date()
	month := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	return Windows{
		Week:        day.AddDate(0, 0, -offset),
		Month:       month,
		Year:        time.Date(y, time.January, 1, 0, 0, 0, 0, loc),
		SeriesStart: month.AddDate(0, -(MonthsInSeries - 1), 0),
	}
}

// MonthKey formats a month bucket label.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// FillSeries returns one entry per month from start, oldest first, taking
// revenue from totals and zero for months without completed orders.
func FillSeries(start time.Time, totals map[string]int64) []MonthlyRevenue {
	series := make([]MonthlyRevenue, 0, MonthsInSeries)
	for i := 0; i < MonthsInSeries; i++ {
		key := MonthKey(start.AddDate(0, i, 0))
		series = append(series, MonthlyRevenue{Month: key, Revenue: totals[key]})
	}
	return series
}
