package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driven"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyNgramN          = "ngram.n"
	keyReportK         = "report.k"
	keyReportPrecision = "report.precision"
	keyReportCSVPath   = "report.csv_path"
	keyReportColor     = "report.color"
	keyWatchInterval   = "watch.interval_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Keys missing from the store take
// their default value.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Ngram: domain.NgramSettings{
			N: s.getInt(keyNgramN, defaults.Ngram.N),
		},
		Report: domain.ReportSettings{
			K:         s.getInt(keyReportK, defaults.Report.K),
			Precision: s.getInt(keyReportPrecision, defaults.Report.Precision),
			CSVPath:   s.configStore.GetString(keyReportCSVPath),
			Color:     s.getBool(keyReportColor, defaults.Report.Color),
		},
		Watch: domain.WatchSettings{
			Interval: time.Duration(
				s.getInt(keyWatchInterval, int(defaults.Watch.Interval/time.Millisecond)),
			) * time.Millisecond,
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("stored settings in %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyNgramN, settings.Ngram.N},
		{keyReportK, settings.Report.K},
		{keyReportPrecision, settings.Report.Precision},
		{keyReportCSVPath, settings.Report.CSVPath},
		{keyReportColor, settings.Report.Color},
		{keyWatchInterval, int(settings.Watch.Interval / time.Millisecond)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("saving %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value according to the type of key, validates the result
// and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var stored any
	switch key {
	case keyNgramN:
		settings.Ngram.N, err = strconv.Atoi(value)
		stored = settings.Ngram.N
	case keyReportK:
		settings.Report.K, err = strconv.Atoi(value)
		stored = settings.Report.K
	case keyReportPrecision:
		settings.Report.Precision, err = strconv.Atoi(value)
		stored = settings.Report.Precision
	case keyReportCSVPath:
		settings.Report.CSVPath = value
		stored = value
	case keyReportColor:
		settings.Report.Color, err = strconv.ParseBool(value)
		stored = settings.Report.Color
	case keyWatchInterval:
		var ms int
		ms, err = strconv.Atoi(value)
		settings.Watch.Interval = time.Duration(ms) * time.Millisecond
		stored = ms
	default:
		return fmt.Errorf("%q: %w", key, domain.ErrUnknownSetting)
	}
	if err != nil {
		return fmt.Errorf("%s=%q: %w", key, value, domain.ErrInvalidInput)
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%s=%q out of range: %w", key, value, err)
	}
	return s.configStore.Set(key, stored)
}

// Keys returns every supported settings key.
func (s *SettingsService) Keys() []string {
	return []string{
		keyNgramN,
		keyReportK,
		keyReportPrecision,
		keyReportCSVPath,
		keyReportColor,
		keyWatchInterval,
	}
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
