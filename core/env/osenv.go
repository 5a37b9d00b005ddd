package env

import (
	"fmt"
	"os"
	"strings"
)

// OSEnv is a VEnv that reads and writes the environment of the running
// process.
type OSEnv struct{}

var _ VEnv = OSEnv{}

// NewOSEnv returns a VEnv backed by the process environment.
func NewOSEnv() OSEnv {
	return OSEnv{}
}

// Unsetenv implements VEnv.Unsetenv.
func (OSEnv) Unsetenv(key string) bool {
	if _, ok := os.LookupEnv(key); !ok {
		return false
	}
	// Unsetenv only fails on platforms that can't remove variables.
	_ = os.Unsetenv(key)
	return true
}

// Setenv implements VEnv.Setenv.
func (OSEnv) Setenv(key, value string) error {
	key, value = Normalize(key, value)
	if key == "" {
		return fmt.Errorf("setenv: empty variable name")
	}
	return os.Setenv(key, value)
}

// LookupEnv implements VEnv.LookupEnv.
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Getenv implements VEnv.Getenv.
func (OSEnv) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ implements VEnv.Environ.
func (OSEnv) Environ() []string {
	var env []string
	for _, e := range os.Environ() {
		// Windows keeps per-drive working directories as "=C:=C:\...".
		if strings.HasPrefix(e, "=") {
			continue
		}
		env = append(env, e)
	}
	sortEnviron(env)
	return env
}
