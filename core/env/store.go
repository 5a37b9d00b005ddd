// Package env holds the variables a shell session reads and writes.
package env

import "os"

const (
	EnvHome  = "HOME"
	EnvPWD   = "PWD"
	EnvPath  = "PATH"
	EnvUser  = "USER"
	EnvDebug = "DEBUG"
)

// Store is the variable state of one shell session.
type Store struct {
	// User holds shell-local variables, including script positional
	// parameters "0", "1", ...
	User VEnv
	// Environ holds the environment passed to external programs.
	Environ VEnv
}

// NewStore creates a store with empty user variables whose environment writes
// through to the running process.
func NewStore() *Store {
	return &Store{
		User:    NewMapEnv(),
		Environ: NewOSEnv(),
	}
}

// NewIsolatedStore creates a store whose environment is an in-memory copy of
// environ, changes to it are not visible to the running process.
func NewIsolatedStore(environ []string) *Store {
	return &Store{
		User:    NewMapEnv(),
		Environ: NewMapEnvFromEnvList(environ),
	}
}

// UserHomeDir returns the home directory from $HOME, falling back to the
// operating system's notion of the current user's home.
func (s *Store) UserHomeDir() (string, error) {
	if home := s.Environ.Getenv(EnvHome); home != "" {
		return home, nil
	}
	return os.UserHomeDir()
}

// Path returns the search path used to locate commands.
func (s *Store) Path() string {
	return s.Environ.Getenv(EnvPath)
}
