package commands

import (
	"fmt"
	"sort"
	"strings"
)

// BuiltinFunc runs a builtin. args holds the full command line, args[0] is the
// builtin's name.
type BuiltinFunc func(s *Shell, args []string) Status

// Builtin is a command implemented by the shell itself.
type Builtin struct {
	Name string
	// Description is the full help text, its first line is a summary.
	Description string
	Main        BuiltinFunc
}

// Summary returns the first line of the description.
func (b Builtin) Summary() string {
	return strings.SplitN(b.Description, "\n", 2)[0]
}

// BuiltinTable maps command names to builtins. It can't be modified after
// it's created.
type BuiltinTable struct {
	byName map[string]Builtin
	sorted []Builtin
}

// NewBuiltinTable creates a table holding the given builtins. It panics if a
// name is registered twice or a builtin is missing its function.
func NewBuiltinTable(builtins ...Builtin) BuiltinTable {
	table := BuiltinTable{byName: make(map[string]Builtin)}
	for _, b := range builtins {
		if _, ok := table.byName[b.Name]; ok {
			panic(fmt.Sprintf("builtin %q registered twice", b.Name))
		}
		if b.Main == nil {
			panic(fmt.Sprintf("builtin %q has no function", b.Name))
		}
		table.byName[b.Name] = b
		table.sorted = append(table.sorted, b)
	}

	sort.Slice(table.sorted, func(i, j int) bool {
		return table.sorted[i].Name < table.sorted[j].Name
	})
	return table
}

// Lookup finds a builtin by name.
func (t BuiltinTable) Lookup(name string) (Builtin, bool) {
	b, ok := t.byName[name]
	return b, ok
}

// List returns the builtins sorted by name.
func (t BuiltinTable) List() []Builtin {
	return append([]Builtin(nil), t.sorted...)
}

// requireArg wraps a builtin that needs at least one argument after its name.
func requireArg(fn BuiltinFunc) BuiltinFunc {
	return func(s *Shell, args []string) Status {
		if len(args) < 2 {
			fmt.Fprintln(s.Stdout, "Insufficient argument")
			return StatusError
		}
		return fn(s, args)
	}
}

var defaultBuiltins = NewBuiltinTable(
	Builtin{
		Name: "cd",
		Description: `Change the working directory.

Usage: cd [DIR]

With no DIR, changes to $HOME. A leading ~ in DIR is replaced with $HOME.
$PWD is updated after a successful change.`,
		Main: builtinCd,
	},
	Builtin{
		Name: "exit",
		Description: `Exit the shell.

Usage: exit

Stops reading commands. Lines after exit in a script are not run.`,
		Main: builtinExit,
	},
	Builtin{
		Name: "export",
		Description: `Set an environment variable.

Usage: export [NAME=VALUE]

With no argument, lists every environment variable. Whitespace around NAME
and VALUE is removed. Environment variables are passed to external programs.`,
		Main: builtinExport,
	},
	Builtin{
		Name: "help",
		Description: `Display information about builtin commands.

Usage: help [NAME]

With no argument, lists the builtins. With NAME, shows the full help for
that builtin.`,
		Main: builtinHelp,
	},
	Builtin{
		Name: "history",
		Description: `Display or clear the interactive command history.

Usage: history [-c]

Lines are numbered from 1. Use -c to clear the history.`,
		Main: builtinHistory,
	},
	Builtin{
		Name: "pass",
		Description: `Do nothing.

Usage: pass [ARG...]

Arguments are ignored.`,
		Main: builtinPass,
	},
	Builtin{
		Name: "set",
		Description: `Set a shell variable.

Usage: set [NAME=VALUE]

With no argument, lists every shell variable. Whitespace around NAME and
VALUE is removed. Shell variables are not passed to external programs;
setting DEBUG=true traces each command before it runs.`,
		Main: builtinSet,
	},
	Builtin{
		Name: "unexport",
		Description: `Remove an environment variable.

Usage: unexport NAME`,
		Main: requireArg(builtinUnexport),
	},
	Builtin{
		Name: "unset",
		Description: `Remove a shell variable.

Usage: unset NAME`,
		Main: requireArg(builtinUnset),
	},
)

// ListBuiltins returns the shell's builtins sorted by name.
func ListBuiltins() []Builtin {
	return defaultBuiltins.List()
}

func builtinExit(s *Shell, args []string) Status {
	return StatusExit
}

func builtinPass(s *Shell, args []string) Status {
	return StatusOK
}

func builtinHelp(s *Shell, args []string) Status {
	w := s.Stdout
	if len(args) > 1 {
		b, ok := s.builtins.Lookup(args[1])
		if !ok {
			fmt.Fprintf(w, "help: %s is not a builtin\n", args[1])
			return StatusCommandNotFound
		}
		fmt.Fprintln(w, b.Description)
		return StatusOK
	}

	builtins := s.builtins.List()
	width := 0
	for _, b := range builtins {
		if len(b.Name) > width {
			width = len(b.Name)
		}
	}

	fmt.Fprintln(w, "These shell commands are defined internally.")
	fmt.Fprintln(w, "Type `help NAME' to find out more about the command NAME.")
	fmt.Fprintln(w)
	for _, b := range builtins {
		fmt.Fprintf(w, "  %-*s  %s\n", width, b.Name, b.Summary())
	}
	return StatusOK
}
