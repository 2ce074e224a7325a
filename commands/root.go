package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/penwyp/go-chronology/internal/analyzer"
	"github.com/penwyp/go-chronology/internal/config"
	"github.com/penwyp/go-chronology/internal/presentation/layout"
	"github.com/penwyp/go-chronology/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Data path
	notesDir   string
	configPath string

	// Period selection
	view     string
	date     string
	fromDate string
	toDate   string

	// Output related
	outputFormat string
	timezone     string
	use24Hour    bool
	groupItems   bool
	weekStart    string

	rootCmd = &cobra.Command{
		Use:   "go-chronology [flags]",
		Short: "Timeline of note activity",
		Long: `go-chronology is a command-line tool that lays out when notes were created and modified.

It scans a notes directory, reads creation and modification times (front matter
dates override file-system times), and renders the selected period as a
two-level timeline: hours split into 10-minute clusters for a day, weekdays
split into 4-hour clusters for a week.

Examples:
  go-chronology                                  # Today's timeline for the current directory
  go-chronology --dir ~/notes --view week        # This week in ~/notes
  go-chronology --date 2024-03-06 --24h          # A given day with a 24-hour clock
  go-chronology --group                          # Collapse clusters holding several notes
  go-chronology --from 2024-03-01 --to 2024-03-07 --output csv
  go-chronology taxonomy --view week             # Print the week slot and cluster labels`,
		SilenceUsage: true,
		RunE:         runTimeline,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return util.CloseLogger()
		},
	}
)

const (
	defaultLogFile  = "~/.go-chronology/logs/app.log"
	defaultNotesDir = "."
)

func init() {
	// Input data configuration
	rootCmd.PersistentFlags().StringVar(&notesDir, "dir", defaultNotesDir,
		"Notes directory path")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath,
		"Config file path")

	// Period selection
	rootCmd.PersistentFlags().StringVar(&view, "view", "day",
		"Timeline view (day, week, month, year)")
	rootCmd.Flags().StringVar(&date, "date", "",
		"Reference date YYYY-MM-DD (default today)")
	rootCmd.Flags().StringVar(&fromDate, "from", "",
		"Range start YYYY-MM-DD, switches to a range view")
	rootCmd.Flags().StringVar(&toDate, "to", "",
		"Range end YYYY-MM-DD, included")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone setting (e.g., Asia/Shanghai, UTC), default from config")
	rootCmd.PersistentFlags().BoolVar(&use24Hour, "24h", false,
		"Use a 24-hour clock")
	rootCmd.Flags().BoolVar(&groupItems, "group", false,
		"Collapse clusters holding several notes")
	rootCmd.PersistentFlags().StringVar(&weekStart, "week-start", "",
		"First day of the week (default from config, else sunday)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.AddCommand(taxonomyCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	settings, err := cfg.TimelineSettings()
	if err != nil {
		return err
	}

	analyzerConfig := &analyzer.Config{
		NotesDir:     config.ExpandPath(notesDir),
		Extensions:   cfg.Extensions,
		Concurrency:  cfg.Concurrency,
		View:         view,
		Date:         date,
		From:         fromDate,
		To:           toDate,
		OutputFormat: outputFormat,
		Width:        layout.DefaultWidth,
		Settings:     settings,
	}

	// Measure and colour only when writing straight to a terminal
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		sizer := layout.NewSizer(f)
		analyzerConfig.Width = sizer.Width()
		analyzerConfig.Color = sizer.IsTerminal()
	}

	a := analyzer.New(analyzerConfig)
	return a.Run(cmd.Context(), cmd.OutOrStdout())
}

// setup initializes logging, loads the config file, applies explicitly set
// flags on top of it and configures the global time provider.
func setup(cmd *cobra.Command) (*config.Config, error) {
	// Determine log level based on debug flag
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	// Initialize logging
	logFile := config.ExpandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("timezone") {
		cfg.Timezone = timezone
	}
	if flags.Changed("24h") {
		cfg.Use24HourClock = use24Hour
	}
	if flags.Changed("group") {
		cfg.GroupItemsInSameBucket = groupItems
	}
	if flags.Changed("week-start") {
		cfg.WeekStart = weekStart
	}
}

func Execute() error {
	err := rootCmd.Execute()
	// PersistentPostRunE is skipped when a command fails
	if closeErr := util.CloseLogger(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// Helper functions

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
