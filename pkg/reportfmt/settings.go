package reportfmt

import (
	"os"
	"strings"
	"sync"
)

// Settings contains process-level options for the formatting engine, as
// opposed to Config which describes the formatting itself.
type Settings struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// StrictMode makes unknown configuration keys an error instead of a warning
	StrictMode bool
}

var (
	globalSettings    *Settings
	globalSettingsMux sync.RWMutex
	settingsOnce      sync.Once
)

// DefaultSettings returns the default process settings
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:   "info",
		StrictMode: false,
	}
}

// SettingsFromEnvironment creates settings from environment variables
func SettingsFromEnvironment() *Settings {
	settings := DefaultSettings()

	// REPORTFMT_LOG_LEVEL
	if val := os.Getenv("REPORTFMT_LOG_LEVEL"); val != "" {
		settings.LogLevel = val
	}

	// REPORTFMT_STRICT_MODE
	if val := os.Getenv("REPORTFMT_STRICT_MODE"); val != "" {
		settings.StrictMode = parseBool(val)
	}

	return settings
}

// GetSettings returns the global settings
func GetSettings() *Settings {
	settingsOnce.Do(func() {
		globalSettings = SettingsFromEnvironment()
	})
	globalSettingsMux.RLock()
	defer globalSettingsMux.RUnlock()

	settingsCopy := *globalSettings
	return &settingsCopy
}

// SetSettings replaces the global settings
func SetSettings(s *Settings) {
	settingsOnce.Do(func() {})
	globalSettingsMux.Lock()
	globalSettings = s
	globalSettingsMux.Unlock()

	GetLogger().SetLevel(parseLogLevel(s.LogLevel))
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
