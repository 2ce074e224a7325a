package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// frontMatter holds the note header keys that override file-system times
type frontMatter struct {
	Created  string `yaml:"created"`
	Date     string `yaml:"date"`
	Modified string `yaml:"modified"`
	Updated  string `yaml:"updated"`
}

func (fm frontMatter) created() string {
	if fm.Created != "" {
		return fm.Created
	}
	return fm.Date
}

func (fm frontMatter) modified() string {
	if fm.Modified != "" {
		return fm.Modified
	}
	return fm.Updated
}

var frontMatterLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// maxFrontMatterLines bounds how far a missing closing fence is searched for
const maxFrontMatterLines = 200

// readFrontMatter parses the YAML block between a leading "---" line and the
// next "---" or "..." line. found is false when the note has no such block.
func readFrontMatter(r io.Reader) (fm frontMatter, found bool, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4*1024), 1024*1024)

	if !sc.Scan() || strings.TrimRight(sc.Text(), " \t\r") != "---" {
		return fm, false, sc.Err()
	}

	var body strings.Builder
	for lines := 0; sc.Scan(); lines++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "---" || line == "..." {
			if err := yaml.Unmarshal([]byte(body.String()), &fm); err != nil {
				return fm, false, fmt.Errorf("invalid front matter: %w", err)
			}
			return fm, true, nil
		}
		if lines >= maxFrontMatterLines {
			break
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	return fm, false, sc.Err()
}

// parseNoteTime parses a front matter date, reading zoneless values in loc
func parseNoteTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range frontMatterLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
