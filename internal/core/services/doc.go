// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// NgramService holds the extract, count and rank pipeline.
// SettingsService maps domain.Settings onto the config store.
package services
