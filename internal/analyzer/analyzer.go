package analyzer

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/penwyp/go-chronology/internal/core/model"
	"github.com/penwyp/go-chronology/internal/core/timeline"
	"github.com/penwyp/go-chronology/internal/data/loader"
	"github.com/penwyp/go-chronology/internal/data/scanner"
	"github.com/penwyp/go-chronology/internal/presentation/formatter"
	"github.com/penwyp/go-chronology/internal/util"
)

type Config struct {
	NotesDir    string
	Extensions  []string
	Concurrency int

	// View is day, week, month or year. From and To, when set, select a
	// range view instead and View is ignored.
	View string
	Date string // YYYY-MM-DD, defaults to today
	From string
	To   string

	OutputFormat string
	Width        int
	Color        bool

	Settings timeline.Settings
}

type Analyzer struct {
	config  *Config
	scanner *scanner.FileScanner
	loader  *loader.Loader
}

func New(config *Config) *Analyzer {
	if config.Concurrency <= 0 {
		config.Concurrency = runtime.NumCPU()
	}
	if config.Settings.Location == nil {
		config.Settings.Location = util.GetTimeProvider().Location()
	}

	return &Analyzer{
		config:  config,
		scanner: scanner.NewFileScanner(config.NotesDir, config.Extensions...),
		loader:  loader.NewLoader(config.Concurrency, config.Settings.Location),
	}
}

// Run builds the timeline and writes it to w in the configured format
func (a *Analyzer) Run(ctx context.Context, w io.Writer) error {
	f, err := formatter.New(a.config.OutputFormat, a.config.Width, a.config.Color)
	if err != nil {
		return err
	}

	tl, err := a.Build(ctx)
	if err != nil {
		return err
	}

	outputStart := time.Now()
	err = f.Format(w, tl)
	util.LogDebug("Output written", util.F("format", a.config.OutputFormat), util.F("duration", time.Since(outputStart)))
	return err
}

// Build scans the notes, keeps the items of the selected period and buckets
// them when the period's granularity has a taxonomy.
func (a *Analyzer) Build(ctx context.Context) (*formatter.Timeline, error) {
	startTime := time.Now()
	logger := util.GetLogger()
	if logger != nil {
		logger = logger.WithContext(context.WithValue(ctx, util.NotesDirKey, a.config.NotesDir))
	}

	period, err := a.resolvePeriod()
	if err != nil {
		return nil, err
	}

	files, err := a.scanner.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes: %w", err)
	}

	items, err := a.loader.LoadFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	inPeriod := timeline.FilterByPeriod(items, period, model.NoteItem.Timestamp)

	tl := &formatter.Timeline{
		Period:   period,
		Settings: a.config.Settings,
		Total:    len(inPeriod),
	}

	if tax, ok := timeline.TaxonomyFor(period.Granularity, a.config.Settings, model.NoteItem.Timestamp); ok {
		res := timeline.Partition(inPeriod, tax)
		tl.Clustered = true
		tl.Slots = res.Slots
		tl.Unbucketed = res.Unbucketed
		if len(res.Unbucketed) > 0 && logger != nil {
			logger.Warn("Items outside the timeline buckets", util.F("count", len(res.Unbucketed)), util.F("view", period.Granularity.String()))
		}
	} else if logger != nil {
		logger.Info("No clustering for view", util.F("view", period.Granularity.String()))
	}

	if logger != nil {
		logger.Debug("Timeline built",
			util.F("period", period.Label()),
			util.F("notes", len(files)),
			util.F("items", len(inPeriod)),
			util.F("slots", len(tl.Slots)),
			util.F("duration", time.Since(startTime)))
	}
	return tl, nil
}

func (a *Analyzer) resolvePeriod() (timeline.Period, error) {
	tp := util.GetTimeProvider()

	if a.config.From != "" || a.config.To != "" {
		if a.config.From == "" || a.config.To == "" {
			return timeline.Period{}, fmt.Errorf("both --from and --to are required for a range")
		}
		from, err := tp.ParseDate(a.config.From)
		if err != nil {
			return timeline.Period{}, err
		}
		to, err := tp.ParseDate(a.config.To)
		if err != nil {
			return timeline.Period{}, err
		}
		return timeline.RangePeriod(from, to)
	}

	g, err := timeline.ParseGranularity(a.config.View)
	if err != nil {
		return timeline.Period{}, err
	}
	if g == timeline.Range {
		return timeline.Period{}, fmt.Errorf("range view needs --from and --to")
	}

	ref := tp.Today()
	if a.config.Date != "" {
		if ref, err = tp.ParseDate(a.config.Date); err != nil {
			return timeline.Period{}, err
		}
	}
	return timeline.PeriodFor(g, ref, a.config.Settings.WeekStart)
}
