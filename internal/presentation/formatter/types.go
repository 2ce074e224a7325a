package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-chronology/internal/core/model"
	"github.com/penwyp/go-chronology/internal/core/timeline"
)

// Timeline is the rendered view of a period
type Timeline struct {
	Period   timeline.Period
	Settings timeline.Settings
	// Clustered is false when the period's granularity has no taxonomy;
	// Slots is then empty.
	Clustered  bool
	Slots      []timeline.Slot[model.NoteItem]
	Unbucketed []model.NoteItem
	// Total counts the items of the period, bucketed or not.
	Total int
}

// Formatter writes a timeline in one output format
type Formatter interface {
	Format(w io.Writer, tl *Timeline) error
}

// New returns the formatter for name. width and color only affect tables.
func New(name string, width int, color bool) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "table":
		return NewTableFormatter(width, color), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (expected table, json or csv)", name)
	}
}
