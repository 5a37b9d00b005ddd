package commands

import "fmt"

// Status is the outcome of dispatching a command line.
type Status int

const (
	// StatusOK is normal completion, including external programs that exited
	// with a non-zero code.
	StatusOK Status = iota
	// StatusExit asks the driver to stop reading commands.
	StatusExit
	// StatusCommandNotFound means the name matched no builtin and nothing on
	// the search path.
	StatusCommandNotFound
	// StatusError is a malformed builtin invocation or a failure to start a
	// program.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "Ok"
	case StatusExit:
		return "Exit"
	case StatusCommandNotFound:
		return "CommandNotFound"
	case StatusError:
		return "Error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// unhandledStatus is called from the default case of status switches.
func unhandledStatus(s Status) {
	panic(fmt.Sprintf("unhandled status %v", s))
}
