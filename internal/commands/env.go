package commands

import (
	"fmt"
	"strings"

	"github.com/vterm/vterm/internal/environ"
	"github.com/vterm/vterm/internal/shell"
	"github.com/vterm/vterm/internal/vfs"
)

type exportCommand struct{}

func (exportCommand) Name() string        { return "export" }
func (exportCommand) Description() string { return "Set environment variables" }

func (exportCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	operands, _ := splitRedirects(args)
	if len(operands) == 0 {
		var out []string
		for _, name := range env.Variables() {
			value, _ := env.Get(name)
			out = append(out, fmt.Sprintf("%s=%s", name, value))
		}
		return shell.Result{Output: strings.Join(out, "\n")}
	}

	for _, arg := range operands {
		if name, value, ok := strings.Cut(arg, "="); ok {
			env.Set(name, value)
			continue
		}
		// Bare name: re-export an existing binding, ignore unknowns.
		if value, ok := env.Get(arg); ok {
			env.Set(arg, value)
		}
	}
	return shell.Result{}
}

type historyCommand struct{}

func (historyCommand) Name() string        { return "history" }
func (historyCommand) Description() string { return "Show command history" }

func (historyCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("history", args, fs, func([]string) shell.Result {
		var out []string
		for i, line := range env.History() {
			out = append(out, fmt.Sprintf("%4d  %s", i+1, line))
		}
		return shell.Result{Output: strings.Join(out, "\n")}
	})
}

type whichCommand struct {
	registry *Registry
}

func (whichCommand) Name() string        { return "which" }
func (whichCommand) Description() string { return "Locate commands" }

func (c whichCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("which", args, fs, func(operands []string) shell.Result {
		if len(operands) == 0 {
			return fail("which: missing command name")
		}
		var out []string
		for _, name := range operands {
			if _, ok := c.registry.Get(name); !ok {
				return fail("which: %s: command not found", name)
			}
			out = append(out, "/usr/bin/"+name)
		}
		return shell.Result{Output: strings.Join(out, "\n")}
	})
}
