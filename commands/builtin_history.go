package commands

import (
	"fmt"

	"github.com/pborman/getopt/v2"
)

func builtinHistory(s *Shell, args []string) Status {
	opts := getopt.New()
	clearOpt := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	w := s.Stdout
	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", args[0], err)
		}
		fmt.Fprintln(w, "usage: history [-c]")
		fmt.Fprintln(w, "Display or clear the interactive command history.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		if err != nil {
			return StatusError
		}
		return StatusOK
	}

	if *clearOpt {
		s.ClearHistory()
		return StatusOK
	}

	for i, line := range s.history {
		fmt.Fprintf(w, "% 5d  %s\n", i+1, line)
	}
	return StatusOK
}
