package amc

import "time"

// AddMonths advances a calendar date by whole months. When the target month
// is shorter than the source day-of-month, the day is clamped to the last
// valid day of the target month (2024-01-31 + 1 month = 2024-02-29). This is
// deliberate: time.Time.AddDate would roll the overflow into the next month
// and push a quarterly cadence out of its month.
func AddMonths(t time.Time, months int) time.Time {
	t = dateOnly(t)
	year, month, day := t.Date()

	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
