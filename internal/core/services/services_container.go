package services

import (
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Rate store first since currency and conversion read from it
	container.Rates = NewRateStoreService(repos.RateProvider, WithBaseCurrency(cfg.BaseCurrency))
	container.Currency = NewCurrencyService(container.Rates)
	container.Conversion = NewConversionService(container.Rates)

	container.Assistant = NewAssistantService(repos.MessageRepo, WithReplyDelay(cfg.AssistantReplyDelay))
	container.Settings = NewSettingsService(repos.SettingsRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RateStoreSvcFacade  = (*rateStoreService)(nil)
	_ portssvc.CurrencySvcFacade   = (*CurrencyService)(nil)
	_ portssvc.ConversionSvcFacade = (*ConversionService)(nil)
	_ portssvc.AssistantSvcFacade  = (*assistantService)(nil)
	_ portssvc.SettingsSvcFacade   = (*SettingsService)(nil)
)
