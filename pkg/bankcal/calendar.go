// Package bankcal answers "is this a banking day?" for payment scheduling.
// The holiday table is supplied by the caller, so supporting another year
// or jurisdiction is a configuration change, not a code change.
package bankcal

import "time"

type Calendar struct {
	holidays map[string]struct{}
}

func dayKey(d time.Time) string { return d.Format("2006-01-02") }

// New builds a calendar from an explicit holiday table. Times are reduced
// to their calendar date; location is ignored.
func New(holidays []time.Time) *Calendar {
	c := &Calendar{holidays: make(map[string]struct{}, len(holidays))}
	for _, h := range holidays {
		c.holidays[dayKey(h)] = struct{}{}
	}
	return c
}

func (c *Calendar) IsHoliday(d time.Time) bool {
	_, ok := c.holidays[dayKey(d)]
	return ok
}

func (c *Calendar) IsBusinessDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !c.IsHoliday(d)
}

// NextBusinessDay advances day by day until the date is neither a weekend
// nor a holiday. A date that already qualifies is returned unchanged.
func (c *Calendar) NextBusinessDay(d time.Time) time.Time {
	for !c.IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
