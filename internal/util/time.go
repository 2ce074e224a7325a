package util

import (
	"fmt"
	"sync"
	"time"
)

// TimeProvider resolves "now" and calendar dates in one configured timezone
type TimeProvider struct {
	location *time.Location
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	mu                 sync.Mutex
)

// LoadLocation resolves a timezone name, treating "" and "Local" as time.Local
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Europe/Paris, Asia/Tokyo", timezone, err)
	}
	return loc, nil
}

// InitializeTimeProvider replaces the global provider with one in timezone.
// The previous provider is kept when timezone is invalid.
func InitializeTimeProvider(timezone string) error {
	mu.Lock()
	defer mu.Unlock()

	provider := &TimeProvider{}
	if err := provider.SetTimezone(timezone); err != nil {
		return err
	}
	globalTimeProvider = provider
	return nil
}

// GetTimeProvider returns the global provider, defaulting to Local
func GetTimeProvider() *TimeProvider {
	mu.Lock()
	defer mu.Unlock()

	if globalTimeProvider == nil {
		globalTimeProvider = &TimeProvider{location: time.Local}
	}
	return globalTimeProvider
}

func (tp *TimeProvider) SetTimezone(timezone string) error {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return err
	}

	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.location = loc
	return nil
}

func (tp *TimeProvider) Location() *time.Location {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.location
}

func (tp *TimeProvider) Now() time.Time {
	return time.Now().In(tp.Location())
}

func (tp *TimeProvider) In(t time.Time) time.Time {
	return t.In(tp.Location())
}

// Today returns midnight of the current day in the provider's timezone
func (tp *TimeProvider) Today() time.Time {
	return StartOfDay(tp.Now())
}

// ParseDate parses a YYYY-MM-DD date at midnight in the provider's timezone
func (tp *TimeProvider) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, tp.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

// StartOfDay truncates t to midnight in t's own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
