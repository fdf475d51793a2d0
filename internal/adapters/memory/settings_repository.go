package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
)

// SettingsRepository holds the settings flags for the lifetime of the process.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings domain.SettingsFlags
}

// NewSettingsRepository starts from domain.DefaultSettings.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{settings: domain.DefaultSettings()}
}

var _ portsrepo.SettingsRepositoryFacade = (*SettingsRepository)(nil)

func (r *SettingsRepository) GetSettings(ctx context.Context) (domain.SettingsFlags, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, settings domain.SettingsFlags) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	return nil
}

func (r *SettingsRepository) ToggleSetting(ctx context.Context, flag domain.SettingFlag) (domain.SettingsFlags, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.Toggle(flag)
	return r.settings, nil
}
