package repositories

import (
	"context"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

// SettingsReader defines read operations for the local settings
type SettingsReader interface {
	GetSettings(ctx context.Context) (domain.SettingsFlags, error)
}

// SettingsWriter defines write operations for the local settings
type SettingsWriter interface {
	SaveSettings(ctx context.Context, settings domain.SettingsFlags) error
	// ToggleSetting flips one flag atomically and returns the resulting flags.
	ToggleSetting(ctx context.Context, flag domain.SettingFlag) (domain.SettingsFlags, error)
}

// SettingsRepositoryFacade combines all settings repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
