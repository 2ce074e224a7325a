//go:build !linux && !darwin

package util

import "time"

func birthTime(string) (time.Time, bool) {
	return time.Time{}, false
}
