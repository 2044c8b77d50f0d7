package calendar

import "time"

// MonthLabelLayout formats a month heading, e.g. "October 2026".
const MonthLabelLayout = "January 2006"

// MonthStart truncates t to midnight on the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// NextMonth returns the first day of the month after t.
// Normalising to the 1st avoids AddDate overflow (Jan 31 + 1 month = Mar 3).
func NextMonth(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0)
}

// MonthLabel returns the display label of t's month.
func MonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}
