package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/penwyp/go-chronology/internal/core/timeline"
	"github.com/penwyp/go-chronology/internal/util"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "~/.go-chronology/config.yaml"

// Config holds user preferences. Zero values are replaced by defaults in
// Load.
type Config struct {
	Use24HourClock         bool     `yaml:"use_24_hour_clock"`
	GroupItemsInSameBucket bool     `yaml:"group_items_in_same_bucket"`
	WeekStart              string   `yaml:"week_start"`
	Timezone               string   `yaml:"timezone"`
	Extensions             []string `yaml:"extensions"`
	Concurrency            int      `yaml:"concurrency"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		WeekStart:   "sunday",
		Timezone:    "Local",
		Extensions:  []string{".md"},
		Concurrency: runtime.NumCPU(),
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			util.LogDebugf("No config file at %s, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.WeekStart == "" {
		c.WeekStart = def.WeekStart
	}
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if len(c.Extensions) == 0 {
		c.Extensions = def.Extensions
	}
	if c.Concurrency <= 0 {
		c.Concurrency = def.Concurrency
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
}

// Validate checks the fields that need parsing
func (c *Config) Validate() error {
	if _, err := ParseWeekday(c.WeekStart); err != nil {
		return err
	}
	if _, err := util.LoadLocation(c.Timezone); err != nil {
		return err
	}
	return nil
}

// TimelineSettings converts the configuration into the explicit settings
// taxonomy construction takes. Call Validate first.
func (c *Config) TimelineSettings() (timeline.Settings, error) {
	weekStart, err := ParseWeekday(c.WeekStart)
	if err != nil {
		return timeline.Settings{}, err
	}
	loc, err := util.LoadLocation(c.Timezone)
	if err != nil {
		return timeline.Settings{}, err
	}
	return timeline.Settings{
		Use24HourClock:         c.Use24HourClock,
		GroupItemsInSameBucket: c.GroupItemsInSameBucket,
		WeekStart:              weekStart,
		Location:               loc,
	}, nil
}

// ParseWeekday accepts full or three-letter English weekday names
func ParseWeekday(name string) (time.Weekday, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if needle == full || needle == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}

// ExpandPath resolves a leading ~/ and makes the path absolute
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
