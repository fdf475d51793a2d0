package dto

import "github.com/SscSPs/currency_companion_app/internal/core/domain"

// SettingsResponse defines the data returned for the settings panel.
type SettingsResponse struct {
	DarkMode      bool `json:"darkMode"`
	Notifications bool `json:"notifications"`
	AutoRefresh   bool `json:"autoRefresh"`
}

// ClearDataRequest defines the body of a clear-data request.
type ClearDataRequest struct {
	Confirm bool `json:"confirm"`
}

// ClearDataResponse defines the data returned after clearing app data.
type ClearDataResponse struct {
	Message string `json:"message"`
}

// ToSettingsResponse converts domain.SettingsFlags to SettingsResponse DTO
func ToSettingsResponse(s domain.SettingsFlags) SettingsResponse {
	return SettingsResponse{
		DarkMode:      s.DarkMode,
		Notifications: s.Notifications,
		AutoRefresh:   s.AutoRefresh,
	}
}
