package cmd

import (
	"github.com/msto63/lu/core/config"
	"github.com/msto63/lu/core/errors"
	"github.com/msto63/lu/core/log"
	"github.com/msto63/lu/utils/stringx"
)

const (
	// SettingsSection is the table or [Section] holding lu's own settings
	SettingsSection = "Settings"

	// EnvPrefix prefixes environment overrides, e.g. LU_WRAP_WIDTH
	EnvPrefix = "LU"
)

// Settings configures the lu command
type Settings struct {
	WrapWidth int
	TabWidth  int
	Indent    int
	LogLevel  string
	LogFormat string
	Color     bool
	Version   string `lu:",readonly"`
}

// SetDefaults fills the values used when no settings file is given
func (s *Settings) SetDefaults() {
	s.WrapWidth = 80
	s.TabWidth = stringx.DefaultSpacesPerTab
	s.Indent = 1
	s.LogLevel = "warn"
	s.LogFormat = "text"
	s.Color = true
	s.Version = Version
}

// DefaultSettings returns Settings with defaults applied
func DefaultSettings() Settings {
	var s Settings
	s.SetDefaults()
	return s
}

// loadSettings applies path, if any, and LU_* environment variables to s.
// A file without a Settings section is skipped with a warning.
func loadSettings(path string, s *Settings, logger *log.Logger) error {
	logger = log.OrDiscard(logger)

	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.LoadFromString("", config.FormatTOML)
	} else {
		cfg, err = config.LoadWithOptions(path, config.LoadOptions{Logger: logger})
	}
	if err != nil {
		return err
	}
	cfg = cfg.WithEnvPrefix(EnvPrefix).WithLogger(logger)

	section := SettingsSection
	if !cfg.Has(section) {
		if path != "" {
			logger.Warn("settings section not found", log.Fields{"path": path, "section": section})
		}
		section = ""
		empty, err := config.LoadFromString("", config.FormatTOML)
		if err != nil {
			return err
		}
		cfg = empty.WithEnvPrefix(EnvPrefix).WithLogger(logger)
	}

	ignored, err := cfg.Decode(section, s)
	if err != nil {
		return err
	}
	if len(ignored) > 0 {
		logger.Warn("ignored settings", log.Fields{"keys": ignored, "count": len(ignored)})
	}
	return nil
}

// loadSettingsFile reads a second settings file for conf diff and meld
func loadSettingsFile(path string, logger *log.Logger) (Settings, error) {
	s := DefaultSettings()
	cfg, err := config.LoadWithOptions(path, config.LoadOptions{Logger: logger})
	if err != nil {
		return s, err
	}
	if !cfg.Has(SettingsSection) {
		return s, errors.NotFound(errors.ModuleConfig, "load_settings", SettingsSection)
	}
	if _, err := cfg.Decode(SettingsSection, &s); err != nil {
		return s, err
	}
	return s, nil
}
