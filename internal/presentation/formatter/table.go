package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-chronology/internal/core/model"
	"github.com/penwyp/go-chronology/internal/core/timeline"
	"github.com/penwyp/go-chronology/internal/util"
)

// TableFormatter draws the timeline as a box table with one row group per
// slot and one line per cluster entry.
type TableFormatter struct {
	headers []string
	width   int
	color   bool
}

const (
	emptySlotMarker = "—"
	minNotesWidth   = 16
)

// NewTableFormatter renders within width cells, or unbounded when width
// is 0. color enables ANSI colors.
func NewTableFormatter(width int, color bool) *TableFormatter {
	return &TableFormatter{
		headers: []string{"Slot", "Cluster", "Notes"},
		width:   width,
		color:   color,
	}
}

type tableRow struct {
	slot    string
	cluster string
	notes   string
}

func (f *TableFormatter) Format(w io.Writer, tl *Timeline) error {
	p := &printer{w: w}

	p.printf("%s · %s\n", f.paint(util.ColorBold, tl.Period.Label()), util.Pluralize(tl.Total, "item"))

	if !tl.Clustered {
		p.printf("No timeline for %s views.\n", tl.Period.Granularity)
		return p.err
	}
	if len(tl.Slots) == 0 {
		p.printf("Nothing happened in this period.\n")
		f.printUnbucketed(p, tl)
		return p.err
	}

	groups := make([][]tableRow, len(tl.Slots))
	for i, slot := range tl.Slots {
		groups[i] = f.slotRows(slot, tl.Settings)
	}

	widths := f.columnWidths(groups)

	f.printBorder(p, widths, "top")
	f.printRow(p, widths, tableRow{f.headers[0], f.headers[1], f.headers[2]})
	for _, rows := range groups {
		f.printBorder(p, widths, "middle")
		for _, row := range rows {
			f.printRow(p, widths, row)
		}
	}
	f.printBorder(p, widths, "bottom")

	f.printUnbucketed(p, tl)
	return p.err
}

// slotRows lays out one slot. Empty clusters produce no line; a slot with
// no item at all gets a single marker line so gaps stay visible.
func (f *TableFormatter) slotRows(slot timeline.Slot[model.NoteItem], settings timeline.Settings) []tableRow {
	var rows []tableRow
	for _, cluster := range slot.Clusters {
		for i, line := range f.clusterLines(cluster, settings) {
			row := tableRow{notes: line}
			if i == 0 {
				row.cluster = cluster.Label
			}
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		rows = append(rows, tableRow{notes: f.paint(util.ColorDim, emptySlotMarker)})
	}
	rows[0].slot = slot.Label
	return rows
}

// clusterLines renders a cluster's items. With GroupItemsInSameBucket a
// cluster of several items collapses to one summary line.
func (f *TableFormatter) clusterLines(cluster timeline.Cluster[model.NoteItem], settings timeline.Settings) []string {
	if cluster.IsEmpty() {
		return nil
	}

	layout := settings.ClockLayout()
	loc := locationOf(settings)
	if settings.GroupItemsInSameBucket && len(cluster.Items) > 1 {
		first := cluster.Items[0].Time.In(loc).Format(layout)
		last := cluster.Items[len(cluster.Items)-1].Time.In(loc).Format(layout)
		return []string{fmt.Sprintf("%s-%s  %d Elements...", first, last, len(cluster.Items))}
	}

	lines := make([]string, len(cluster.Items))
	for i, item := range cluster.Items {
		lines[i] = fmt.Sprintf("%s %s %s",
			item.Time.In(loc).Format(layout),
			f.badge(item.Attribute),
			item.Title)
	}
	return lines
}

func (f *TableFormatter) badge(attr model.DateAttribute) string {
	color := util.ColorYellow
	if attr == model.AttributeCreated {
		color = util.ColorGreen
	}
	return f.paint(color, "["+attr.Badge()+"]")
}

func (f *TableFormatter) paint(color, text string) string {
	if !f.color {
		return text
	}
	return util.Colorize(color, text)
}

func (f *TableFormatter) columnWidths(groups [][]tableRow) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, rows := range groups {
		for _, row := range rows {
			widths[0] = max(widths[0], util.GetDisplayWidth(row.slot))
			widths[1] = max(widths[1], util.GetDisplayWidth(row.cluster))
			widths[2] = max(widths[2], visibleWidth(row.notes))
		}
	}

	// borders and padding: "│ " + " │ " + " │ " + " │"
	available := f.width - widths[0] - widths[1] - 10
	if f.width > 0 && widths[2] > available {
		widths[2] = max(available, minNotesWidth)
	}
	return widths
}

func (f *TableFormatter) printBorder(p *printer, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	default:
		left, middle, right = "└", "┴", "┘"
	}

	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width+2)
	}
	p.printf("%s%s%s\n", left, strings.Join(parts, middle), right)
}

func (f *TableFormatter) printRow(p *printer, widths []int, row tableRow) {
	notes := row.notes
	if visibleWidth(notes) > widths[2] {
		notes = util.Truncate(stripColors(notes), widths[2])
	}
	notes += strings.Repeat(" ", max(0, widths[2]-visibleWidth(notes)))

	p.printf("│ %s │ %s │ %s │\n",
		util.PadRight(row.slot, widths[0]),
		util.PadLeft(row.cluster, widths[1]),
		notes)
}

func (f *TableFormatter) printUnbucketed(p *printer, tl *Timeline) {
	if len(tl.Unbucketed) == 0 {
		return
	}
	p.printf("%s outside the timeline buckets.\n", util.Pluralize(len(tl.Unbucketed), "item"))
}

func locationOf(settings timeline.Settings) *time.Location {
	if settings.Location == nil {
		return time.Local
	}
	return settings.Location
}

// visibleWidth measures s without its color sequences
func visibleWidth(s string) int {
	return util.GetDisplayWidth(stripColors(s))
}

func stripColors(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// printer remembers the first write error so rendering code stays linear
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
