package services

import (
	"context"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

// SettingsSvcFacade defines operations on the local settings panel
type SettingsSvcFacade interface {
	// GetSettings returns the current flags.
	GetSettings(ctx context.Context) (domain.SettingsFlags, error)

	// ToggleSetting flips one flag and returns the updated flags.
	ToggleSetting(ctx context.Context, flag domain.SettingFlag) (domain.SettingsFlags, error)

	// ClearData reports success once confirmed. There is no stored data to remove.
	ClearData(ctx context.Context, confirmed bool) (string, error)
}
