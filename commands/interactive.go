package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/env"
	"github.com/josephlewis42/minish/core/logger"
)

// LineReader reads interactive input a line at a time.
type LineReader interface {
	SetPrompt(prompt string)
	// Readline returns io.EOF when input is closed and readline.ErrInterrupt
	// when the user interrupts the read.
	Readline() (string, error)
}

// ReadlineInput is a LineReader backed by a readline instance.
type ReadlineInput struct {
	*readline.Instance
}

var _ LineReader = (*ReadlineInput)(nil)

// ResetHistory clears the in-memory readline history.
func (r *ReadlineInput) ResetHistory() {
	r.Operation.ResetHistory()
}

// NewReadline creates a line reader over the shell's streams that saves
// history to the configured history file.
func (s *Shell) NewReadline() (*ReadlineInput, error) {
	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(s.Stdin),
		Stdout:      s.Stdout,
		Stderr:      s.Stderr,
		HistoryFile: s.Config.HistoryPath(),
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &ReadlineInput{Instance: instance}, nil
}

// RunInteractive prompts for and runs commands until exit is run or input
// ends. It returns the shell's exit code.
func (s *Shell) RunInteractive(input LineReader) int {
	s.input = input
	defer func() { s.input = nil }()

	s.record(&logger.SessionStart{Mode: "interactive"})

	for {
		input.SetPrompt(s.Prompt())
		line, err := input.Readline()

		switch {
		case err == io.EOF, err == readline.ErrInterrupt:
			return 0 // Input closed or interrupted, quit.

		case err != nil:
			log.Printf("Error readline: %v", err)
			return 1

		case strings.TrimSpace(line) == "":
			continue // empty line
		}

		s.history = append(s.history, line)

		tokens, err := shlex.Split(line, true)
		if err != nil {
			fmt.Fprintf(s.Stdout, "minish: syntax error: %v\n", err)
			continue
		}

		switch status := s.Dispatch(tokens); status {
		case StatusExit:
			return 0
		case StatusOK, StatusCommandNotFound, StatusError:
			continue
		default:
			unhandledStatus(status)
		}
	}
}

var promptAttributes = []color.Attribute{color.FgGreen, color.Bold}

// Prompt renders the configured prompt.
//
// \u expands to $USER, \h to the hostname, \w to the working directory with
// $HOME abbreviated as ~ and \$ to # for root or $ otherwise.
func (s *Shell) Prompt() string {
	prompt := s.Config.Prompt

	if strings.Contains(prompt, `\u`) {
		prompt = strings.ReplaceAll(prompt, `\u`, s.Vars.Environ.Getenv(env.EnvUser))
	}
	if strings.Contains(prompt, `\h`) {
		host, _ := os.Hostname()
		prompt = strings.ReplaceAll(prompt, `\h`, host)
	}
	if strings.Contains(prompt, `\w`) {
		pwd, _ := s.getwd()
		if home, err := s.Vars.UserHomeDir(); err == nil {
			pwd = abbreviateHome(pwd, home)
		}
		prompt = strings.ReplaceAll(prompt, `\w`, pwd)
	}
	if os.Geteuid() == 0 {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return colorize(s.Config.Color, prompt)
}

// abbreviateHome replaces home with ~ when dir is home or inside it.
func abbreviateHome(dir, home string) string {
	home = strings.TrimSuffix(home, string(filepath.Separator))
	switch {
	case home == "":
		return dir
	case dir == home:
		return "~"
	case strings.HasPrefix(dir, home+string(filepath.Separator)):
		return "~" + strings.TrimPrefix(dir, home)
	default:
		return dir
	}
}

func colorize(mode, text string) string {
	c := color.New(promptAttributes...)
	switch mode {
	case config.ColorNever:
		return text
	case config.ColorAlways:
		c.EnableColor()
	}
	// auto leaves the decision to color.NoColor, which checks the terminal.
	return c.Sprint(text)
}
