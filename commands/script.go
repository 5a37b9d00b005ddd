package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/minish/core/logger"
	"github.com/spf13/afero"
)

// isComment returns true for lines starting with # or //.
func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

// RunScript runs each line of the script at path. args are bound to the shell
// variables "0", "1", ... before the first line runs. It returns the exit code
// for the shell: 1 if the script couldn't be read, otherwise 0.
func (s *Shell) RunScript(path string, args []string) int {
	exists, err := afero.Exists(s.Fs, path)
	if err != nil || !exists {
		fmt.Fprintf(s.Stdout, "%s not found\n", path)
		return 1
	}

	data, err := afero.ReadFile(s.Fs, path)
	if err != nil {
		fmt.Fprintf(s.Stdout, "%s: %v\n", path, err)
		return 1
	}

	s.record(&logger.SessionStart{Mode: "script", Script: path, Args: args})

	for i, arg := range args {
		// Keys are never empty so Setenv can't fail.
		_ = s.Vars.User.Setenv(strconv.Itoa(i), arg)
	}

	for lineno, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")

		if lineno == 0 && strings.HasPrefix(line, "#!") {
			continue
		}
		if isComment(line) {
			continue
		}

		tokens, err := shlex.Split(line, true)
		if err != nil {
			fmt.Fprintf(s.Stdout, "%s: line %d: syntax error: %v\n", path, lineno+1, err)
			continue
		}

		switch status := s.Dispatch(tokens); status {
		case StatusExit:
			return 0
		case StatusOK, StatusCommandNotFound, StatusError:
			// Keep going, errors were already reported.
		default:
			unhandledStatus(status)
		}
	}

	return 0
}
