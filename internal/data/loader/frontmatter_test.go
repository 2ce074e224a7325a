package loader

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFrontMatter(t *testing.T) {
	note := "---\ntitle: Plan\ncreated: 2024-02-10 08:15\nupdated: 2024-02-11T09:00:00Z\ntags: [a, b]\n---\n# Body\n"

	fm, found, err := readFrontMatter(strings.NewReader(note))

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2024-02-10 08:15", fm.created())
	assert.Equal(t, "2024-02-11T09:00:00Z", fm.modified())
}

func TestReadFrontMatterDateAlias(t *testing.T) {
	fm, found, err := readFrontMatter(strings.NewReader("---\ndate: 2024-02-10\n...\n"))

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2024-02-10", fm.created())
	assert.Empty(t, fm.modified())
}

func TestReadFrontMatterAbsent(t *testing.T) {
	tests := []struct {
		name string
		note string
	}{
		{name: "plain note", note: "# Title\ncreated: 2024-01-01\n"},
		{name: "empty file", note: ""},
		{name: "unterminated", note: "---\ncreated: 2024-01-01\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found, err := readFrontMatter(strings.NewReader(tt.note))
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestReadFrontMatterInvalidYAML(t *testing.T) {
	_, found, err := readFrontMatter(strings.NewReader("---\ncreated: [oops\n---\n"))

	assert.Error(t, err)
	assert.False(t, found)
}

func TestParseNoteTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-02-10T08:15:00Z", time.Date(2024, 2, 10, 8, 15, 0, 0, time.UTC)},
		{"2024-02-10T08:15:00+02:00", time.Date(2024, 2, 10, 6, 15, 0, 0, time.UTC)},
		{"2024-02-10 08:15:30", time.Date(2024, 2, 10, 8, 15, 30, 0, loc)},
		{"2024-02-10 08:15", time.Date(2024, 2, 10, 8, 15, 0, 0, loc)},
		{" 2024-02-10 ", time.Date(2024, 2, 10, 0, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseNoteTime(tt.input, loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}

	_, err = parseNoteTime("last tuesday", loc)
	assert.Error(t, err)
}
