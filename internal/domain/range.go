package domain

import "time"

// DateRange is an inclusive window of time passed to schedule lookups.
type DateRange struct {
	From time.Time
	To   time.Time
}

// DayRange builds the range covering a single calendar day of t in its
// location: midnight through 23:59:59.999.
func DayRange(t time.Time) DateRange {
	y, m, d := t.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	to := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return DateRange{From: from, To: to}
}

// LookaheadRange builds the range from midnight of t through the end of the
// day `days` calendar days later.
func LookaheadRange(t time.Time, days int) DateRange {
	y, m, d := t.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	to := from.AddDate(0, 0, days)
	return DateRange{From: from, To: to}
}

// FromDate returns the range start formatted as YYYY-MM-DD.
func (r DateRange) FromDate() string { return r.From.Format("2006-01-02") }

// ToDate returns the range end formatted as YYYY-MM-DD.
func (r DateRange) ToDate() string { return r.To.Format("2006-01-02") }

// Days returns each calendar day in the range, inclusive on both ends.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	y, m, d := r.From.Date()
	cur := time.Date(y, m, d, 0, 0, 0, 0, r.From.Location())
	for !cur.After(r.To) {
		days = append(days, cur)
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}
