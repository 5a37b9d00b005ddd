package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/josephlewis42/minish/core/env"
)

func builtinCd(s *Shell, args []string) Status {
	w := s.Stdout

	var target string
	switch len(args) {
	case 1:
		home, err := s.Vars.UserHomeDir()
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", args[0], err)
			return StatusError
		}
		target = home
	case 2:
		target = s.expandHome(args[1])
	default:
		fmt.Fprintf(w, "%s: too many arguments\n", args[0])
		return StatusError
	}

	if _, err := s.stat(target); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "%s: %s: does not exist\n", args[0], target)
		return StatusError
	}

	if err := s.chdir(target); err != nil {
		fmt.Fprintf(w, "%s: %s: %v\n", args[0], target, err)
		return StatusError
	}

	if wd, err := s.getwd(); err == nil {
		_ = s.Vars.Environ.Setenv(env.EnvPWD, wd)
	}
	return StatusOK
}

// expandHome replaces a leading "~" or "~/" with the home directory.
func (s *Shell) expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := s.Vars.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
