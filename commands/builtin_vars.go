package commands

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/minish/core/env"
)

func builtinSet(s *Shell, args []string) Status {
	return assignOrList(s, s.Vars.User, "set", args)
}

func builtinExport(s *Shell, args []string) Status {
	return assignOrList(s, s.Vars.Environ, "export", args)
}

// assignOrList prints every variable when called without arguments, otherwise
// it stores the NAME=VALUE given as the first argument.
func assignOrList(s *Shell, vars env.VEnv, name string, args []string) Status {
	w := s.Stdout
	if len(args) < 2 {
		for _, entry := range vars.Environ() {
			key, value := env.SplitPair(entry)
			fmt.Fprintf(w, "%s %s=%q\n", name, key, value)
		}
		return StatusOK
	}

	if !strings.Contains(args[1], "=") {
		fmt.Fprintln(w, "Syntax error, expecting '='")
		return StatusError
	}

	key, value := env.SplitPair(args[1])
	if err := vars.Setenv(key, value); err != nil {
		fmt.Fprintf(w, "%s: %v\n", name, err)
		return StatusError
	}
	return StatusOK
}

func builtinUnset(s *Shell, args []string) Status {
	return remove(s, s.Vars.User, "variables", args[1])
}

func builtinUnexport(s *Shell, args []string) Status {
	return remove(s, s.Vars.Environ, "environ", args[1])
}

func remove(s *Shell, vars env.VEnv, kind, key string) Status {
	key = strings.TrimSpace(key)
	if !vars.Unsetenv(key) {
		fmt.Fprintf(s.Stdout, "%s was not in %s\n", key, kind)
	}
	return StatusOK
}
