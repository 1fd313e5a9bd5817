package model

// Settings is the process-wide app settings document, persisted on
// every change.
type Settings struct {
	DarkMode         bool `json:"dark_mode"`
	SidebarCollapsed bool `json:"sidebar_collapsed"`
}

// DefaultSettings returns the out-of-the-box settings. Loading merges
// the on-disk file over these so newly introduced keys always have a
// value against an older file.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:         true,
		SidebarCollapsed: false,
	}
}
