package driving

import "github.com/custodia-labs/wordgrams/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, filling unset values with defaults.
	Get() (*domain.Settings, error)

	// Save validates and persists settings.
	Save(settings *domain.Settings) error

	// Set parses and stores a single setting by key.
	Set(key, value string) error

	// Keys returns every supported settings key.
	Keys() []string

	// Path returns where settings are persisted.
	Path() string
}
