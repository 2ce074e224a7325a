package formatter

import (
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-chronology/internal/core/model"
	"github.com/penwyp/go-chronology/internal/core/timeline"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonPeriod struct {
	View  string    `json:"view"`
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type jsonTimeline struct {
	Period     jsonPeriod                      `json:"period"`
	Clustered  bool                            `json:"clustered"`
	Total      int                             `json:"total"`
	Slots      []timeline.Slot[model.NoteItem] `json:"slots"`
	Unbucketed []model.NoteItem                `json:"unbucketed,omitempty"`
}

func (f *JSONFormatter) Format(w io.Writer, tl *Timeline) error {
	loc := locationOf(tl.Settings)
	doc := jsonTimeline{
		Period: jsonPeriod{
			View:  tl.Period.Granularity.String(),
			Label: tl.Period.Label(),
			Start: tl.Period.Start.In(loc),
			End:   tl.Period.End.In(loc),
		},
		Clustered:  tl.Clustered,
		Total:      tl.Total,
		Slots:      make([]timeline.Slot[model.NoteItem], len(tl.Slots)),
		Unbucketed: itemsIn(tl.Unbucketed, loc),
	}
	for i, slot := range tl.Slots {
		clusters := make([]timeline.Cluster[model.NoteItem], len(slot.Clusters))
		for j, cluster := range slot.Clusters {
			clusters[j] = timeline.Cluster[model.NoteItem]{Label: cluster.Label, Items: itemsIn(cluster.Items, loc)}
		}
		doc.Slots[i] = timeline.Slot[model.NoteItem]{Label: slot.Label, Clusters: clusters}
	}

	data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// itemsIn copies items with their times shown in loc. nil stays nil.
func itemsIn(items []model.NoteItem, loc *time.Location) []model.NoteItem {
	if items == nil {
		return nil
	}
	out := make([]model.NoteItem, len(items))
	for i, item := range items {
		item.Time = item.Time.In(loc)
		out[i] = item
	}
	return out
}
