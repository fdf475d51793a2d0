package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
)

const (
	// ClearDataPrompt is shown before app data is cleared.
	ClearDataPrompt = "Are you sure you want to clear all app data? This action cannot be undone."
	// ClearDataSuccess is reported once clearing is confirmed.
	ClearDataSuccess = "All data has been cleared."
)

// SettingsService manages the local toggles. Flags have no side effects.
type SettingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*SettingsService)(nil)

func (s *SettingsService) GetSettings(ctx context.Context) (domain.SettingsFlags, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.SettingsFlags{}, fmt.Errorf("failed to get settings in service: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) ToggleSetting(ctx context.Context, flag domain.SettingFlag) (domain.SettingsFlags, error) {
	if !flag.IsValid() {
		return domain.SettingsFlags{}, fmt.Errorf("%w: unknown setting '%s'", apperrors.ErrValidation, flag)
	}

	settings, err := s.settingsRepo.ToggleSetting(ctx, flag)
	if err != nil {
		return domain.SettingsFlags{}, fmt.Errorf("failed to toggle setting in service: %w", err)
	}

	s.LogInfo(ctx, "Setting toggled", slog.String("flag", string(flag)), slog.Bool("value", settings.Get(flag)))
	return settings, nil
}

// ClearData returns the prompt with ErrConfirmationRequired until confirmed. Nothing is stored anywhere, so a confirmed
// request just reports success.
func (s *SettingsService) ClearData(ctx context.Context, confirmed bool) (string, error) {
	if !confirmed {
		return ClearDataPrompt, fmt.Errorf("%w: %s", apperrors.ErrConfirmationRequired, ClearDataPrompt)
	}
	s.LogInfo(ctx, "Clear app data confirmed")
	return ClearDataSuccess, nil
}
