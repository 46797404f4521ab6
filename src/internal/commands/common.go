package commands

import (
	"github.com/keen-tools/blocklist-gen/src/internal/config"
	"github.com/keen-tools/blocklist-gen/src/internal/log"
)

type Runner interface {
	Init(args []string, ctx *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	// ConfigPath is the optional settings file given with -config.
	ConfigPath string
	Verbose    bool
	// Settings are loaded once before any command is initialized.
	Settings *config.Settings
	Logger   *log.Logger
}

// LoadSettings loads the settings file, or returns the defaults when no
// file was given.
func LoadSettings(configPath string, logger *log.Logger) (*config.Settings, error) {
	if configPath == "" {
		return config.DefaultSettings(), nil
	}
	return config.LoadSettings(configPath, logger)
}
