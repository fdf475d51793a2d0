package domain

// SettingFlag names one of the independent boolean settings.
type SettingFlag string

const (
	SettingDarkMode      SettingFlag = "darkMode"
	SettingNotifications SettingFlag = "notifications"
	SettingAutoRefresh   SettingFlag = "autoRefresh"
)

// AllSettingFlags lists the flags in display order.
var AllSettingFlags = []SettingFlag{SettingDarkMode, SettingNotifications, SettingAutoRefresh}

// IsValid reports whether f is a known flag.
func (f SettingFlag) IsValid() bool {
	switch f {
	case SettingDarkMode, SettingNotifications, SettingAutoRefresh:
		return true
	}
	return false
}

// SettingsFlags holds the local toggles. There are no invariants between the flags.
type SettingsFlags struct {
	DarkMode      bool
	Notifications bool
	AutoRefresh   bool
}

// DefaultSettings returns the flags every launch starts with.
func DefaultSettings() SettingsFlags {
	return SettingsFlags{
		DarkMode:      false,
		Notifications: true,
		AutoRefresh:   true,
	}
}

// Get returns the value of flag. Unknown flags read as false.
func (s SettingsFlags) Get(flag SettingFlag) bool {
	switch flag {
	case SettingDarkMode:
		return s.DarkMode
	case SettingNotifications:
		return s.Notifications
	case SettingAutoRefresh:
		return s.AutoRefresh
	}
	return false
}

// Toggle flips flag and returns the new value. Unknown flags are left untouched.
func (s *SettingsFlags) Toggle(flag SettingFlag) bool {
	switch flag {
	case SettingDarkMode:
		s.DarkMode = !s.DarkMode
	case SettingNotifications:
		s.Notifications = !s.Notifications
	case SettingAutoRefresh:
		s.AutoRefresh = !s.AutoRefresh
	}
	return s.Get(flag)
}
