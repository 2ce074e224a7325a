package util

import (
	"os"
	"time"
)

// FileTimes holds the creation and modification instants of a file
type FileTimes struct {
	Created  time.Time
	Modified time.Time
	// BirthKnown is false when the platform could not report a creation time
	// and Created fell back to Modified.
	BirthKnown bool
}

// GetFileTimes stats path and returns its creation and modification times
func GetFileTimes(path string) (*FileTimes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	times := &FileTimes{
		Created:  info.ModTime(),
		Modified: info.ModTime(),
	}
	if birth, ok := birthTime(path); ok {
		times.Created = birth
		times.BirthKnown = true
	}
	return times, nil
}
