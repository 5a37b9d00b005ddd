package commands

import (
	"errors"
	"fmt"
	"os/exec"
)

// execute runs the program at path and waits for it to exit. argv[0] is
// passed through unchanged so programs see the name they were invoked as.
//
// The program's exit code is stored in LastExitCode and doesn't change the
// returned status, only failing to start the program is an error. That error
// is returned alongside StatusError.
func (s *Shell) execute(path string, argv []string) (Status, error) {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    s.Vars.Environ.Environ(),
		Stdin:  s.Stdin,
		Stdout: s.Stdout,
		Stderr: s.Stderr,
	}

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		s.LastExitCode = 0
	case errors.As(err, &exitErr):
		s.LastExitCode = exitErr.ExitCode()
	default:
		fmt.Fprintf(s.Stdout, "%s: %v\n", argv[0], err)
		s.LastExitCode = 126
		return StatusError, err
	}
	return StatusOK, nil
}
