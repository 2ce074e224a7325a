package formatter

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/penwyp/go-chronology/internal/core/model"
)

// CSVFormatter writes one record per bucketed item, then the unbucketed
// items with empty slot and cluster columns.
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

var csvHeaders = []string{"Slot", "Cluster", "Time", "Attribute", "Title", "Path"}

func (f *CSVFormatter) Format(w io.Writer, tl *Timeline) error {
	cw := csv.NewWriter(w)
	loc := locationOf(tl.Settings)

	if err := cw.Write(csvHeaders); err != nil {
		return err
	}

	for _, slot := range tl.Slots {
		for _, cluster := range slot.Clusters {
			for _, item := range cluster.Items {
				if err := cw.Write(csvRecord(slot.Label, cluster.Label, item, loc)); err != nil {
					return err
				}
			}
		}
	}
	for _, item := range tl.Unbucketed {
		if err := cw.Write(csvRecord("", "", item, loc)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRecord(slot, cluster string, item model.NoteItem, loc *time.Location) []string {
	return []string{
		slot,
		cluster,
		item.Time.In(loc).Format(time.RFC3339),
		item.Attribute.String(),
		item.Title,
		item.Path,
	}
}
