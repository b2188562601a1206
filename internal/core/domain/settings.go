package domain

import "time"

// MaxPrecision is the largest number of decimal places a report may print.
const MaxPrecision = 12

// Settings holds user defaults for wordgrams.
type Settings struct {
	// Ngram holds extraction defaults.
	Ngram NgramSettings

	// Report holds report rendering settings.
	Report ReportSettings

	// Watch holds settings for the watch command.
	Watch WatchSettings
}

// NgramSettings configures extraction when a caller omits n.
type NgramSettings struct {
	// N is the default n-gram length.
	N int
}

// ReportSettings configures how reports are produced.
type ReportSettings struct {
	// K is the default number of top entries.
	K int

	// Precision is the number of decimal places for relative frequencies.
	Precision int

	// CSVPath is where reports are also written as CSV. Empty disables CSV.
	CSVPath string

	// Color enables styled output when writing to a terminal.
	Color bool
}

// WatchSettings configures the watch command.
type WatchSettings struct {
	// Interval is the minimum delay between two re-runs.
	Interval time.Duration
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Ngram: NgramSettings{
			N: 1,
		},
		Report: ReportSettings{
			K:         10,
			Precision: 3,
			Color:     true,
		},
		Watch: WatchSettings{
			Interval: 250 * time.Millisecond,
		},
	}
}

// Validate checks that every setting is within range.
func (s *Settings) Validate() error {
	switch {
	case s.Ngram.N < 1:
		return ErrInvalidInput
	case s.Report.K < 0:
		return ErrInvalidInput
	case s.Report.Precision < 0 || s.Report.Precision > MaxPrecision:
		return ErrInvalidInput
	case s.Watch.Interval < 0:
		return ErrInvalidInput
	}
	return nil
}
