package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DateAttribute tells which file event a NoteItem stands for
type DateAttribute int

const (
	AttributeCreated DateAttribute = iota
	AttributeModified
)

func (a DateAttribute) String() string {
	switch a {
	case AttributeCreated:
		return "created"
	case AttributeModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Badge is the single-letter marker shown next to an item in timelines
func (a DateAttribute) Badge() string {
	if a == AttributeCreated {
		return "C"
	}
	return "M"
}

func (a DateAttribute) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *DateAttribute) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "created":
		*a = AttributeCreated
	case "modified":
		*a = AttributeModified
	default:
		return fmt.Errorf("unknown date attribute %q", text)
	}
	return nil
}

// NoteItem is one timestamped event of a note: its creation or its last
// modification. A note yields one item per attribute.
type NoteItem struct {
	Path      string        `json:"path"`
	Title     string        `json:"title"`
	Attribute DateAttribute `json:"attribute"`
	Time      time.Time     `json:"time"`
}

// NewNoteItem builds an item titled after the file name without extension
func NewNoteItem(path string, attr DateAttribute, t time.Time) NoteItem {
	base := filepath.Base(path)
	return NoteItem{
		Path:      path,
		Title:     strings.TrimSuffix(base, filepath.Ext(base)),
		Attribute: attr,
		Time:      t,
	}
}

// Key identifies the item across renders
func (n NoteItem) Key() string {
	return n.Path + "#" + n.Attribute.String()
}

// Timestamp returns the instant the item is placed at
func (n NoteItem) Timestamp() time.Time {
	return n.Time
}
