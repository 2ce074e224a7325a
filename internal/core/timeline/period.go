package timeline

import (
	"fmt"
	"time"

	"github.com/penwyp/go-chronology/internal/util"
)

// Period is the calendar span a view covers. End is exclusive.
type Period struct {
	Granularity Granularity
	Start       time.Time
	End         time.Time
}

// PeriodFor returns the day, week, month or year containing ref, in ref's
// location. Weeks begin on weekStart.
func PeriodFor(g Granularity, ref time.Time, weekStart time.Weekday) (Period, error) {
	day := util.StartOfDay(ref)

	switch g {
	case Day:
		return Period{Granularity: g, Start: day, End: day.AddDate(0, 0, 1)}, nil
	case Week:
		offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
		start := day.AddDate(0, 0, -offset)
		return Period{Granularity: g, Start: start, End: start.AddDate(0, 0, 7)}, nil
	case Month:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return Period{Granularity: g, Start: start, End: start.AddDate(0, 1, 0)}, nil
	case Year:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return Period{Granularity: g, Start: start, End: start.AddDate(1, 0, 0)}, nil
	default:
		return Period{}, fmt.Errorf("%s view needs explicit bounds", g)
	}
}

// RangePeriod spans the whole days from `from` through `to`, both included
func RangePeriod(from, to time.Time) (Period, error) {
	start := util.StartOfDay(from)
	last := util.StartOfDay(to)
	if last.Before(start) {
		return Period{}, fmt.Errorf("range end %s is before its start %s",
			last.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return Period{Granularity: Range, Start: start, End: last.AddDate(0, 0, 1)}, nil
}

// Contains reports whether t falls in [Start, End)
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Label is a human-readable name of the period
func (p Period) Label() string {
	switch p.Granularity {
	case Day:
		return p.Start.Format("Mon 2006-01-02")
	case Month:
		return p.Start.Format("January 2006")
	case Year:
		return p.Start.Format("2006")
	default:
		return fmt.Sprintf("%s – %s", p.Start.Format("2006-01-02"), p.End.AddDate(0, 0, -1).Format("2006-01-02"))
	}
}

// FilterByPeriod keeps, in order, the items whose time falls in p
func FilterByPeriod[T any](items []T, p Period, at func(T) time.Time) []T {
	var kept []T
	for _, item := range items {
		if p.Contains(at(item)) {
			kept = append(kept, item)
		}
	}
	return kept
}
