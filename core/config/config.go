package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs afero.Fs
	// configurationDir is empty for the built-in defaults.
	configurationDir string

	Prompt      string `json:"prompt" validate:"required"`
	Color       string `json:"color" validate:"oneof=always auto never"`
	HistoryFile string `json:"history_file"`
	PathCache   bool   `json:"path_cache"`
	Debug       bool   `json:"debug"`
	EventLog    string `json:"event_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// Dir returns the directory the configuration was loaded from, or the empty
// string for the built-in defaults.
func (c *Configuration) Dir() string {
	return c.configurationDir
}

func (c *Configuration) resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	if c.configurationDir == "" {
		return ""
	}
	return filepath.Join(c.configurationDir, name)
}

// HistoryPath returns the file interactive history should be saved to, or the
// empty string if history shouldn't be persisted.
func (c *Configuration) HistoryPath() string {
	return c.resolve(c.HistoryFile)
}

// HasEventLog returns true if the configuration names an event log.
func (c *Configuration) HasEventLog() bool {
	return c.resolve(c.EventLog) != ""
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.resolve(c.EventLog), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
