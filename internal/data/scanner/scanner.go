package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/penwyp/go-chronology/internal/util"
)

// FileScanner finds note files below a base directory
type FileScanner struct {
	baseDir    string
	extensions map[string]struct{}
}

// NewFileScanner creates a scanner matching the given extensions,
// case-insensitively. With no extension it matches ".md".
func NewFileScanner(baseDir string, extensions ...string) *FileScanner {
	if len(extensions) == 0 {
		extensions = []string{".md"}
	}
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	return &FileScanner{baseDir: baseDir, extensions: exts}
}

// Scan walks the base directory and returns matching file paths in lexical
// order. Hidden directories such as .obsidian or .git are skipped, and
// unreadable entries are logged and skipped. The base directory itself must
// exist.
func (s *FileScanner) Scan(ctx context.Context) ([]string, error) {
	start := time.Now()

	info, err := os.Stat(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("notes path %s is not a directory", s.baseDir)
	}

	util.LogDebug("Start scanning directory", util.F("dir", s.baseDir))

	var files []string
	dirCount, totalCount := 0, 0

	err = filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			util.LogDebug("Skip entry", util.F("path", path), util.F("error", err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != s.baseDir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			dirCount++
			return nil
		}

		totalCount++
		if s.matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	util.LogDebug("File scan completed",
		util.F("duration", time.Since(start)),
		util.F("dirs", dirCount),
		util.F("files", totalCount),
		util.F("notes", len(files)))

	return files, nil
}

func (s *FileScanner) matches(path string) bool {
	_, ok := s.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}
