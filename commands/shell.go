// Package commands implements the shell: builtins, command dispatch and the
// interactive and script drivers.
package commands

import (
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/env"
	"github.com/josephlewis42/minish/core/logger"
	"github.com/josephlewis42/minish/core/lookpath"
	"github.com/spf13/afero"
)

// Shell is a single shell session. It's not safe for concurrent use.
type Shell struct {
	Vars   *env.Store
	Fs     afero.Fs
	Config *config.Configuration
	Events logger.EventRecorder

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// LastExitCode holds the exit code of the last external program, -1 if it
	// was killed by a signal.
	LastExitCode int

	builtins BuiltinTable
	resolver *lookpath.Resolver
	history  []string
	// input is set while the interactive driver runs.
	input LineReader

	// The working directory belongs to the process, not Fs.
	chdir func(dir string) error
	getwd func() (string, error)
	stat  func(name string) (fs.FileInfo, error)
}

// Options configures a new Shell. Zero values are replaced with defaults
// that use the real process environment, filesystem and standard streams.
type Options struct {
	Vars   *env.Store
	Fs     afero.Fs
	Config *config.Configuration
	Events logger.EventRecorder

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShell creates a session.
func NewShell(opts Options) *Shell {
	s := &Shell{
		Vars:     opts.Vars,
		Fs:       opts.Fs,
		Config:   opts.Config,
		Events:   opts.Events,
		Stdin:    opts.Stdin,
		Stdout:   opts.Stdout,
		Stderr:   opts.Stderr,
		builtins: defaultBuiltins,
		chdir:    os.Chdir,
		getwd:    os.Getwd,
		stat:     os.Stat,
	}

	if s.Vars == nil {
		s.Vars = env.NewStore()
	}
	if s.Fs == nil {
		s.Fs = afero.NewOsFs()
	}
	if s.Config == nil {
		s.Config = config.Default()
	}
	if s.Events == nil {
		s.Events = logger.NopEventRecorder{}
	}
	if s.Stdin == nil {
		s.Stdin = os.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = os.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = os.Stderr
	}

	s.resolver = lookpath.New(s.Fs, s.Vars.Path)
	if !s.Config.PathCache {
		s.resolver.DisableCache()
	}

	return s
}

// History returns the interactive lines read so far.
func (s *Shell) History() []string {
	return append([]string(nil), s.history...)
}

// ClearHistory forgets the interactive history.
func (s *Shell) ClearHistory() {
	s.history = nil
	if r, ok := s.input.(interface{ ResetHistory() }); ok {
		r.ResetHistory()
	}
}

func (s *Shell) record(event logger.LogType) {
	if err := s.Events.Record(event); err != nil {
		log.Printf("Error recording event: %v", err)
	}
}
