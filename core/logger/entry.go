package logger

// LogType is implemented by every event that can be recorded.
type LogType interface {
	isLogType()
}

// LogEntry is a single line of the event log. Exactly one of the event fields
// is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart *SessionStart `json:"session_start,omitempty"`
	RunCommand   *RunCommand   `json:"run_command,omitempty"`
}

// GetLogType returns the event held by the entry, or nil if it holds none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.SessionStart != nil:
		return le.SessionStart
	case le.RunCommand != nil:
		return le.RunCommand
	default:
		return nil
	}
}

func (le *LogEntry) setLogType(event LogType) {
	switch event := event.(type) {
	case *SessionStart:
		le.SessionStart = event
	case *RunCommand:
		le.RunCommand = event
	}
}

// SessionStart is recorded when a driver starts reading commands.
type SessionStart struct {
	// Mode is "interactive" or "script".
	Mode string `json:"mode"`
	// Script holds the script path in script mode.
	Script string `json:"script,omitempty"`
	// Args holds the positional arguments in script mode.
	Args []string `json:"args,omitempty"`
}

func (*SessionStart) isLogType() {}

// RunCommand is recorded for every dispatched command line.
type RunCommand struct {
	Command []string `json:"command"`
	// ResolvedCommandPath is the executable that was run, "builtin:NAME" for
	// builtins or empty if the command wasn't found.
	ResolvedCommandPath string `json:"resolved_command_path,omitempty"`
	Status              string `json:"status"`
	ExitCode            int    `json:"exit_code"`
	// ErrorMessage is set when the program couldn't be started.
	ErrorMessage string `json:"error_message,omitempty"`
}

func (*RunCommand) isLogType() {}
