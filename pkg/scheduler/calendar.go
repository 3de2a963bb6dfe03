package scheduler

import "time"

// DateKeyLayout is the schedule map key format.
const DateKeyLayout = "2006-01-02"

// DateKey renders the schedule map key for a date (local calendar day).
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// SundaysInMonth returns every Sunday of the given month in ascending
// order. The result always has 4 or 5 elements.
func SundaysInMonth(year int, month time.Month) []time.Time {
	sundays := make([]time.Time, 0, 5)
	day := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	// Jump to the first Sunday, then step a week at a time.
	if wd := day.Weekday(); wd != time.Sunday {
		day = day.AddDate(0, 0, int(7-wd))
	}
	for day.Month() == month {
		sundays = append(sundays, day)
		day = day.AddDate(0, 0, 7)
	}
	return sundays
}
