package commands

import (
	"fmt"

	"github.com/josephlewis42/minish/core/env"
	"github.com/josephlewis42/minish/core/logger"
)

const builtinPathPrefix = "builtin:"

// Dispatch runs a single tokenized command line.
//
// Builtins take priority over programs on the search path. External programs
// get the full token list as their argv and inherit the shell's standard
// streams; Dispatch blocks until they exit.
func (s *Shell) Dispatch(tokens []string) Status {
	if len(tokens) == 0 || tokens[0] == "" {
		return StatusOK
	}
	name := tokens[0]

	if builtin, ok := s.builtins.Lookup(name); ok {
		s.trace("builtin "+name, tokens)
		status := builtin.Main(s, tokens)
		s.recordRun(tokens, builtinPathPrefix+name, status, 0, nil)
		return status
	}

	status, path := s.Resolve(name)
	switch status {
	case StatusOK:
		// Found, run it below.
	case StatusCommandNotFound:
		fmt.Fprintf(s.Stdout, "%s: command not found\n", name)
		s.recordRun(tokens, "", status, 0, nil)
		return status
	case StatusExit, StatusError:
		s.recordRun(tokens, "", status, 0, nil)
		return status
	default:
		unhandledStatus(status)
	}

	s.trace(path, tokens)
	status, err := s.execute(path, tokens)
	s.recordRun(tokens, path, status, s.LastExitCode, err)
	return status
}

// Resolve finds the program a command name refers to. It doesn't consider
// builtins.
func (s *Shell) Resolve(name string) (Status, string) {
	path, err := s.resolver.Resolve(name)
	if err != nil {
		return StatusCommandNotFound, ""
	}
	return StatusOK, path
}

func (s *Shell) debugEnabled() bool {
	if debug, ok := s.Vars.User.LookupEnv(env.EnvDebug); ok {
		return debug == "true"
	}
	return s.Config.Debug
}

func (s *Shell) trace(resolved string, tokens []string) {
	if s.debugEnabled() {
		fmt.Fprintf(s.Stderr, "+ %s %q\n", resolved, tokens)
	}
}

func (s *Shell) recordRun(tokens []string, resolved string, status Status, exitCode int, runErr error) {
	event := &logger.RunCommand{
		Command:             tokens,
		ResolvedCommandPath: resolved,
		Status:              status.String(),
		ExitCode:            exitCode,
	}
	if runErr != nil {
		event.ErrorMessage = runErr.Error()
	}
	s.record(event)
}
