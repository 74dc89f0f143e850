package settings

import "context"

// SettingsRepository defines the interface for settings persistence
type SettingsRepository interface {
	// Get returns the settings row, creating it with defaults when missing
	Get(ctx context.Context) (*Settings, error)

	// Save persists the settings row
	Save(ctx context.Context, settings *Settings) error
}
