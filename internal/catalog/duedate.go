package catalog

import "time"

// Today returns the current UTC date at midnight. Borrow and due dates are
// kept at date granularity.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DueDate returns today's date plus the given number of days.
func DueDate(days int) time.Time {
	return Today().AddDate(0, 0, days)
}
