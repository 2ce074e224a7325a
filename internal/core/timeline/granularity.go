package timeline

import (
	"fmt"
	"strings"
)

// Granularity is the calendar scale of a view
type Granularity int

const (
	Day Granularity = iota
	Week
	Month
	Year
	Range
)

var granularityNames = map[Granularity]string{
	Day:   "day",
	Week:  "week",
	Month: "month",
	Year:  "year",
	Range: "range",
}

func (g Granularity) String() string {
	if name, ok := granularityNames[g]; ok {
		return name
	}
	return fmt.Sprintf("granularity(%d)", int(g))
}

// ParseGranularity accepts the names printed by String, case-insensitively
func ParseGranularity(s string) (Granularity, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for g, name := range granularityNames {
		if name == needle {
			return g, nil
		}
	}
	return Day, fmt.Errorf("unknown view %q (expected day, week, month, year or range)", s)
}

// Clustered reports whether the granularity has a two-level taxonomy
func (g Granularity) Clustered() bool {
	return g == Day || g == Week
}
