package rules

import "time"

// NextMonth15 is day 15 of the month after d.
func NextMonth15(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month()+1, 15, 0, 0, 0, 0, time.UTC)
}

func addDays(d time.Time, days int) time.Time {
	return d.AddDate(0, 0, days)
}
