package timeline

import (
	"strconv"
	"time"
)

const (
	dayClusterWidth  = 10 // minutes
	dayClusterCount  = 3
	weekClusterWidth = 4 // hours
	weekClusterCount = 6
)

// Settings carries the display preferences taxonomy construction depends on.
// Nothing in this package reads them from anywhere else.
type Settings struct {
	Use24HourClock         bool
	GroupItemsInSameBucket bool
	WeekStart              time.Weekday
	// Location the items are bucketed in; nil keeps each item's own location.
	Location *time.Location
}

// Taxonomy is a two-level set of ordered labels plus the functions placing
// an item on each level.
type Taxonomy[T any] struct {
	Slots      []string
	Clusters   []string
	SlotKey    KeyFunc[T]
	ClusterKey KeyFunc[T]
}

// Bucketize applies the taxonomy to items
func (tax Taxonomy[T]) Bucketize(items []T) []Slot[T] {
	return Bucketize(items, tax.Slots, tax.SlotKey, tax.Clusters, tax.ClusterKey)
}

// TaxonomyFor returns the taxonomy of g. ok is false for granularities that
// have no two-level clustering (month, year and ranges).
func TaxonomyFor[T any](g Granularity, settings Settings, at func(T) time.Time) (Taxonomy[T], bool) {
	switch g {
	case Day:
		return HourOfDay(settings, at), true
	case Week:
		return DayOfWeek(settings, at), true
	default:
		return Taxonomy[T]{}, false
	}
}

// HourOfDay has one slot per hour and clusters of ten minutes starting at
// 0, 10 and 20 past the hour.
func HourOfDay[T any](settings Settings, at func(T) time.Time) Taxonomy[T] {
	layout := hourLayout(settings.Use24HourClock)

	slots := make([]string, 24)
	for h := range slots {
		slots[h] = time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format(layout)
	}

	clusters := make([]string, dayClusterCount)
	for i := range clusters {
		clusters[i] = strconv.Itoa(i * dayClusterWidth)
	}

	return Taxonomy[T]{
		Slots:    slots,
		Clusters: clusters,
		SlotKey: func(item T) string {
			return settings.localize(at(item)).Format(layout)
		},
		ClusterKey: func(item T) string {
			return strconv.Itoa(settings.localize(at(item)).Minute() / dayClusterWidth * dayClusterWidth)
		},
	}
}

// DayOfWeek has one slot per weekday starting at settings.WeekStart and
// four-hour clusters listed from the latest (20) down to the earliest (0).
func DayOfWeek[T any](settings Settings, at func(T) time.Time) Taxonomy[T] {
	slots := make([]string, 7)
	for i := range slots {
		slots[i] = ShortWeekday((settings.WeekStart + time.Weekday(i)) % 7)
	}

	clusters := make([]string, weekClusterCount)
	for i := range clusters {
		clusters[i] = strconv.Itoa((weekClusterCount - 1 - i) * weekClusterWidth)
	}

	return Taxonomy[T]{
		Slots:    slots,
		Clusters: clusters,
		SlotKey: func(item T) string {
			return ShortWeekday(settings.localize(at(item)).Weekday())
		},
		ClusterKey: func(item T) string {
			return strconv.Itoa(settings.localize(at(item)).Hour() / weekClusterWidth * weekClusterWidth)
		},
	}
}

// ShortWeekday returns the three-letter English name of d
func ShortWeekday(d time.Weekday) string {
	return d.String()[:3]
}

// ClockLayout is the time-of-day layout matching the clock preference
func (s Settings) ClockLayout() string {
	if s.Use24HourClock {
		return "15:04"
	}
	return "3:04 PM"
}

func (s Settings) localize(t time.Time) time.Time {
	if s.Location == nil {
		return t
	}
	return t.In(s.Location)
}

func hourLayout(use24Hour bool) string {
	if use24Hour {
		return "15"
	}
	return "03 PM"
}
