// Package logger is a standardized event logging framework for the shell.
//
// Events are recorded as newline delimited JSON so logs from many sessions can
// be appended to the same file and summarized later with a Report.
package logger
