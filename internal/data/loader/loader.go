package loader

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/penwyp/go-chronology/internal/core/model"
	"github.com/penwyp/go-chronology/internal/util"
	"golang.org/x/sync/errgroup"
)

// Loader turns note files into timeline items
type Loader struct {
	concurrency int
	location    *time.Location
}

// NewLoader creates a loader reading at most concurrency files at once.
// Front matter dates without a zone are read in loc.
func NewLoader(concurrency int, loc *time.Location) *Loader {
	if concurrency <= 0 {
		concurrency = 1
	}
	if loc == nil {
		loc = time.Local
	}
	return &Loader{concurrency: concurrency, location: loc}
}

// LoadFile returns the created and modified items of one note
func (l *Loader) LoadFile(path string) ([]model.NoteItem, error) {
	times, err := util.GetFileTimes(path)
	if err != nil {
		return nil, err
	}
	created, modified := times.Created, times.Modified

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fm, found, err := readFrontMatter(f)
	if err != nil {
		util.LogDebug("Ignoring front matter", util.F("path", path), util.F("error", err))
	}
	if found {
		if value := fm.created(); value != "" {
			if t, err := parseNoteTime(value, l.location); err == nil {
				created = t
			} else {
				util.LogDebug("Ignoring created date", util.F("path", path), util.F("error", err))
			}
		}
		if value := fm.modified(); value != "" {
			if t, err := parseNoteTime(value, l.location); err == nil {
				modified = t
			} else {
				util.LogDebug("Ignoring modified date", util.F("path", path), util.F("error", err))
			}
		}
	}

	return []model.NoteItem{
		model.NewNoteItem(path, model.AttributeCreated, created),
		model.NewNoteItem(path, model.AttributeModified, modified),
	}, nil
}

// LoadFiles loads every file concurrently. Files that cannot be read are
// logged and skipped. The items come back sorted by time, then path, then
// attribute, so output does not depend on scheduling.
func (l *Loader) LoadFiles(ctx context.Context, files []string) ([]model.NoteItem, error) {
	start := time.Now()
	perFile := make([][]model.NoteItem, len(files))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(l.concurrency)

	for i, file := range files {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			items, err := l.LoadFile(file)
			if err != nil {
				util.LogWarn("Failed to load note", util.F("path", file), util.F("error", err))
				return nil
			}
			perFile[i] = items
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}

	var items []model.NoteItem
	for _, fileItems := range perFile {
		items = append(items, fileItems...)
	}
	SortItems(items)

	util.LogDebug("Notes loaded",
		util.F("files", len(files)),
		util.F("items", len(items)),
		util.F("duration", time.Since(start)))
	return items, nil
}

// SortItems orders items chronologically with path and attribute as
// tie-breakers
func SortItems(items []model.NoteItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.Time.Equal(b.Time) {
			return a.Time.Before(b.Time)
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Attribute < b.Attribute
	})
}
