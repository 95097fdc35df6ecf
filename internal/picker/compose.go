package picker

import "time"

// ComposeDate builds the timestamp for a picked calendar date. The time of day
// comes from ref when ref is present, otherwise it is midnight in loc.
func ComposeDate(year int, month time.Month, day int, ref time.Time, loc *time.Location) time.Time {
	if hasReference(ref) {
		return time.Date(year, month, day, ref.Hour(), ref.Minute(), 0, 0, ref.Location())
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// ComposeTime builds the timestamp for a picked time of day. The calendar date
// comes from seed when present, otherwise from now (today).
func ComposeTime(hour, minute int, seed time.Time, now time.Time) time.Time {
	base := seed
	if !hasReference(base) {
		base = now
	}
	y, m, d := base.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, base.Location())
}

// seedClock returns the hour and minute a time dialog opens on.
func seedClock(ref time.Time, now time.Time) (hour, minute int) {
	if hasReference(ref) {
		return ref.Hour(), ref.Minute()
	}
	return now.Hour(), now.Minute()
}
