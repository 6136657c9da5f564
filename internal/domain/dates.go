package domain

import "time"

// DateOf truncates a timestamp to its calendar date in UTC. All entry and
// expense dates are stored this way so range queries compare cleanly.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the week containing t, as a date.
func StartOfWeek(t time.Time) time.Time {
	d := DateOf(t)

	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	return d.AddDate(0, 0, -offset)
}
