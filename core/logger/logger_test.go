package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleNewJsonLinesLogRecorder() {
	buf := &bytes.Buffer{}
	logger := NewJsonLinesLogRecorder(buf)

	logger.Record(&LogEntry{
		TimestampMicros: 1000000,
		RunCommand: &RunCommand{
			Command:             []string{"ls", "-l"},
			ResolvedCommandPath: "/bin/ls",
			Status:              "Ok",
		},
	})

	fmt.Print(buf.String())
	// Output: {"timestamp_micros":1000000,"run_command":{"command":["ls","-l"],"resolved_command_path":"/bin/ls","status":"Ok","exit_code":0}}
}

func TestSessionLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewJsonLinesLogRecorder(buf)
	logger.Now = func() time.Time { return time.Unix(1, 0) }
	session := logger.NewSession()
	require.NotEmpty(t, session.SessionID())

	require.NoError(t, session.Record(&SessionStart{Mode: "script", Script: "a.sh", Args: []string{"x"}}))
	require.NoError(t, session.Record(&RunCommand{Command: []string{"exit"}, Status: "Exit"}))

	var entries []*LogEntry
	require.NoError(t, ReadJSONLinesLog(buf, func(le *LogEntry) {
		entries = append(entries, le)
	}))

	require.Len(t, entries, 2)
	for _, le := range entries {
		assert.Equal(t, session.SessionID(), le.SessionID)
		assert.Equal(t, int64(1000000), le.TimestampMicros)
	}
	assert.Equal(t, &SessionStart{Mode: "script", Script: "a.sh", Args: []string{"x"}}, entries[0].GetLogType())
	assert.Equal(t, &RunCommand{Command: []string{"exit"}, Status: "Exit"}, entries[1].GetLogType())
}

func TestReport(t *testing.T) {
	log := strings.Join([]string{
		`{"session_id":"1","session_start":{"mode":"interactive"}}`,
		`{"session_id":"1","run_command":{"command":["ls"],"resolved_command_path":"/bin/ls","status":"Ok","exit_code":0}}`,
		`{"session_id":"1","run_command":{"command":["false"],"resolved_command_path":"/bin/false","status":"Ok","exit_code":1}}`,
		`{"session_id":"1","run_command":{"command":["nope"],"status":"CommandNotFound","exit_code":0}}`,
		`{"session_id":"1","run_command":{"command":["nope"],"status":"CommandNotFound","exit_code":0}}`,
		`{"session_id":"1","run_command":{"command":["set","x"],"resolved_command_path":"builtin:set","status":"Error","exit_code":0}}`,
		`{"session_id":"1","run_command":{"command":["data.txt"],"resolved_command_path":"/bin/data.txt","status":"Error","exit_code":126,"error_message":"permission denied"}}`,
		`{"session_id":"2"}`,
	}, "\n")

	report := NewReport()
	require.NoError(t, ReadJSONLinesLog(strings.NewReader(log), report.Update))

	assert.Equal(t, 8, report.LogEntries)
	assert.Equal(t, 1, report.InvalidEntries.Get("<nil>"))
	assert.Equal(t, 1, report.Sessions.Modes.Get("interactive"))
	assert.Equal(t, 2, report.UnknownCommand.CommandNames.Get("nope"))
	assert.Equal(t, 2, report.RunCommand.Statuses.Get("Ok"))
	assert.Equal(t, 1, report.RunCommand.ResolvedCommandPaths.Get("builtin:set"))
	assert.Equal(t, 1, report.Failures.Get("false", "Ok", "1", ""))
	assert.Equal(t, 1, report.Failures.Get("set", "Error", "0", ""))
	assert.Equal(t, 1, report.Failures.Get("data.txt", "Error", "126", "permission denied"))

	_, err := json.Marshal(report)
	assert.NoError(t, err)
}

func TestPathCounter_MarshalJSON(t *testing.T) {
	ctr := NewPathCounter("command", "status")
	ctr.Increment("b", "Ok")
	ctr.Increment("a", "Ok")
	ctr.Increment("a", "Ok")

	out, err := json.Marshal(ctr)
	assert.NoError(t, err)
	assert.JSONEq(t, `[
		{"count":2,"event":{"command":"a","status":"Ok"}},
		{"count":1,"event":{"command":"b","status":"Ok"}}
	]`, string(out))
}
