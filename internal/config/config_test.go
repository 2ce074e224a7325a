package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, runtime.NumCPU(), cfg.Concurrency)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
use_24_hour_clock: true
group_items_in_same_bucket: true
week_start: Mon
timezone: UTC
extensions: [md, ".TXT"]
concurrency: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Use24HourClock)
	assert.True(t, cfg.GroupItemsInSameBucket)
	assert.Equal(t, "Mon", cfg.WeekStart)
	assert.Equal(t, []string{".md", ".txt"}, cfg.Extensions)
	assert.Equal(t, 3, cfg.Concurrency)

	settings, err := cfg.TimelineSettings()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, settings.WeekStart)
	assert.Equal(t, "UTC", settings.Location.String())
	assert.True(t, settings.Use24HourClock)
	assert.True(t, settings.GroupItemsInSameBucket)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "use_24_hour_clock: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, []string{".md"}, cfg.Extensions)
	assert.Positive(t, cfg.Concurrency)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "weekday", body: "week_start: someday\n", want: "unknown weekday"},
		{name: "timezone", body: "timezone: Nowhere/City\n", want: "invalid timezone"},
		{name: "yaml", body: "week_start: [unclosed\n", want: "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseWeekday(t *testing.T) {
	for input, want := range map[string]time.Weekday{
		"sunday":   time.Sunday,
		"Mon":      time.Monday,
		" FRIDAY ": time.Friday,
		"sat":      time.Saturday,
	} {
		got, err := ParseWeekday(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseWeekday("fr")
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got := ExpandPath("~/notes")
	assert.True(t, strings.HasPrefix(got, home))
	assert.True(t, filepath.IsAbs(ExpandPath("relative/dir")))
}
