package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stamp struct {
	name string
	at   time.Time
}

func stampTime(s stamp) time.Time { return s.at }

func TestHourOfDay24Hour(t *testing.T) {
	tax := HourOfDay(Settings{Use24HourClock: true}, stampTime)

	require.Len(t, tax.Slots, 24)
	assert.Equal(t, "00", tax.Slots[0])
	assert.Equal(t, "13", tax.Slots[13])
	assert.Equal(t, "23", tax.Slots[23])
	assert.Equal(t, []string{"0", "10", "20"}, tax.Clusters)

	s := stamp{at: time.Date(2024, 3, 1, 13, 27, 0, 0, time.UTC)}
	assert.Equal(t, "13", tax.SlotKey(s))
	assert.Equal(t, "20", tax.ClusterKey(s))
}

func TestHourOfDay12Hour(t *testing.T) {
	tax := HourOfDay(Settings{}, stampTime)

	assert.Equal(t, "12 AM", tax.Slots[0])
	assert.Equal(t, "01 AM", tax.Slots[1])
	assert.Equal(t, "12 PM", tax.Slots[12])
	assert.Equal(t, "11 PM", tax.Slots[23])

	s := stamp{at: time.Date(2024, 3, 1, 15, 5, 0, 0, time.UTC)}
	assert.Equal(t, "03 PM", tax.SlotKey(s))
	assert.Equal(t, "0", tax.ClusterKey(s))
}

func TestHourOfDayLateMinutesFallOutsideClusters(t *testing.T) {
	tax := HourOfDay(Settings{Use24HourClock: true}, stampTime)
	late := stamp{name: "late", at: time.Date(2024, 3, 1, 9, 45, 0, 0, time.UTC)}

	assert.Equal(t, "40", tax.ClusterKey(late))

	res := Partition([]stamp{late}, tax)
	assert.Empty(t, res.Slots)
	assert.Equal(t, []stamp{late}, res.Unbucketed)
}

func TestHourOfDayUsesLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tax := HourOfDay(Settings{Use24HourClock: true, Location: tokyo}, stampTime)
	s := stamp{at: time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)}

	assert.Equal(t, "10", tax.SlotKey(s))
}

func TestDayOfWeek(t *testing.T) {
	tax := DayOfWeek(Settings{WeekStart: time.Sunday}, stampTime)

	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, tax.Slots)
	assert.Equal(t, []string{"20", "16", "12", "8", "4", "0"}, tax.Clusters)

	// 2024-03-06 is a Wednesday
	s := stamp{at: time.Date(2024, 3, 6, 14, 59, 0, 0, time.UTC)}
	assert.Equal(t, "Wed", tax.SlotKey(s))
	assert.Equal(t, "12", tax.ClusterKey(s))
}

func TestDayOfWeekStartsOnConfiguredDay(t *testing.T) {
	tax := DayOfWeek(Settings{WeekStart: time.Monday}, stampTime)

	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, tax.Slots)
}

func TestDayOfWeekBucketizeKeepsDescendingClusters(t *testing.T) {
	tax := DayOfWeek(Settings{WeekStart: time.Monday}, stampTime)
	items := []stamp{
		{name: "tue-early", at: time.Date(2024, 3, 5, 1, 0, 0, 0, time.UTC)},
		{name: "thu-late", at: time.Date(2024, 3, 7, 22, 0, 0, 0, time.UTC)},
	}

	slots := tax.Bucketize(items)

	require.Len(t, slots, 3)
	assert.Equal(t, "Tue", slots[0].Label)
	assert.Equal(t, "Wed", slots[1].Label)
	assert.Equal(t, "Thu", slots[2].Label)
	assert.Equal(t, "0", slots[0].Clusters[5].Label)
	assert.Len(t, slots[0].Clusters[5].Items, 1)
	assert.Equal(t, "20", slots[2].Clusters[0].Label)
	assert.Len(t, slots[2].Clusters[0].Items, 1)
}

func TestTaxonomyFor(t *testing.T) {
	tests := []struct {
		granularity Granularity
		wantOK      bool
		wantSlots   int
	}{
		{Day, true, 24},
		{Week, true, 7},
		{Month, false, 0},
		{Year, false, 0},
		{Range, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.granularity.String(), func(t *testing.T) {
			tax, ok := TaxonomyFor(tt.granularity, Settings{}, stampTime)
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, tax.Slots, tt.wantSlots)
			assert.Equal(t, tt.wantOK, tt.granularity.Clustered())
		})
	}
}

func TestSettingsClockLayout(t *testing.T) {
	at := time.Date(2024, 1, 1, 17, 5, 0, 0, time.UTC)

	assert.Equal(t, "17:05", at.Format(Settings{Use24HourClock: true}.ClockLayout()))
	assert.Equal(t, "5:05 PM", at.Format(Settings{}.ClockLayout()))
}

func TestHourOfDayDropsLateMinutesBeforeTrimming(t *testing.T) {
	tax := HourOfDay(Settings{Use24HourClock: true, Location: time.UTC}, stampTime)
	items := []stamp{
		{name: "late", at: time.Date(2024, 3, 6, 1, 45, 0, 0, time.UTC)},
		{name: "kept", at: time.Date(2024, 3, 6, 3, 5, 0, 0, time.UTC)},
	}

	slots := tax.Bucketize(items)
	require.Len(t, slots, 1)
	assert.Equal(t, "03", slots[0].Label)
	assert.Len(t, slots[0].Clusters[0].Items, 1)

	res := Partition(items, tax)
	assert.Equal(t, slots, res.Slots)
	require.Len(t, res.Unbucketed, 1)
	assert.Equal(t, "late", res.Unbucketed[0].name)
}
