package formatter

import (
	"testing"
	"time"

	"github.com/penwyp/go-chronology/internal/core/model"
	"github.com/penwyp/go-chronology/internal/core/timeline"
	"github.com/stretchr/testify/require"
)

var fixtureDay = time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return fixtureDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func fixtureItems() []model.NoteItem {
	return []model.NoteItem{
		model.NewNoteItem("/vault/standup.md", model.AttributeCreated, at(9, 2)),
		model.NewNoteItem("/vault/plan.md", model.AttributeModified, at(9, 7)),
		model.NewNoteItem("/vault/plan.md", model.AttributeCreated, at(9, 21)),
		model.NewNoteItem("/vault/review.md", model.AttributeModified, at(11, 14)),
		model.NewNoteItem("/vault/late.md", model.AttributeModified, at(11, 48)),
	}
}

func buildTimeline(t *testing.T, settings timeline.Settings, items []model.NoteItem) *Timeline {
	t.Helper()
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	period, err := timeline.PeriodFor(timeline.Day, fixtureDay, settings.WeekStart)
	require.NoError(t, err)

	tax, ok := timeline.TaxonomyFor(timeline.Day, settings, model.NoteItem.Timestamp)
	require.True(t, ok)
	res := timeline.Partition(items, tax)

	return &Timeline{
		Period:     period,
		Settings:   settings,
		Clustered:  true,
		Slots:      res.Slots,
		Unbucketed: res.Unbucketed,
		Total:      len(items),
	}
}

// offsetItems are fixture items read back with a +02:00 offset, as file
// times come back in the machine's local zone.
func offsetItems() []model.NoteItem {
	zone := time.FixedZone("UTC+2", 2*60*60)
	items := fixtureItems()
	for i := range items {
		items[i].Time = items[i].Time.In(zone)
	}
	return items
}
