package commands

import (
	"sort"
	"time"

	"github.com/vterm/vterm/internal/shell"
)

// Registry is an immutable name-to-command table. Build it once with
// NewRegistry and hand it to the executor by reference.
type Registry struct {
	commands map[string]shell.Command
}

// NewRegistry builds the full built-in command set.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]shell.Command)}

	builtins := []shell.Command{
		lsCommand{},
		cdCommand{},
		pwdCommand{},
		mkdirCommand{},
		touchCommand{},
		rmCommand{},
		echoCommand{},
		catCommand{},
		grepCommand{},
		sortCommand{},
		headCommand{},
		tailCommand{},
		wcCommand{},
		findCommand{},
		exportCommand{},
		historyCommand{},
		dateCommand{},
		clearCommand{},
		saveCommand{},
		sysinfoCommand{started: time.Now()},
		// which and help need the finished table.
		whichCommand{registry: r},
		helpCommand{registry: r},
	}
	for _, cmd := range builtins {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (shell.Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
