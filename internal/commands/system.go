package commands

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/vterm/vterm/internal/environ"
	"github.com/vterm/vterm/internal/shell"
	"github.com/vterm/vterm/internal/vfs"
)

type dateCommand struct{}

func (dateCommand) Name() string        { return "date" }
func (dateCommand) Description() string { return "Display current date and time" }

func (dateCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("date", args, fs, func([]string) shell.Result {
		return shell.Result{Output: time.Now().Format("Mon Jan  2 15:04:05 2006")}
	})
}

type clearCommand struct{}

func (clearCommand) Name() string        { return "clear" }
func (clearCommand) Description() string { return "Clear the terminal screen" }

func (clearCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	// ANSI clear-screen plus cursor-home; the session prints it raw.
	return shell.Result{Output: "\033[2J\033[H"}
}

type saveCommand struct{}

func (saveCommand) Name() string        { return "save" }
func (saveCommand) Description() string { return "Save filesystem and environment state" }

func (saveCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	if err := fs.Save(); err != nil {
		return fail("save: %v", err)
	}
	if err := env.Save(); err != nil {
		return fail("save: %v", err)
	}
	return shell.Result{Output: "Filesystem and environment saved successfully!"}
}

type helpCommand struct {
	registry *Registry
}

func (helpCommand) Name() string        { return "help" }
func (helpCommand) Description() string { return "Show help for commands" }

func (c helpCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("help", args, fs, func(operands []string) shell.Result {
		if len(operands) > 0 {
			cmd, ok := c.registry.Get(operands[0])
			if !ok {
				return fail("help: no help topics match '%s'", operands[0])
			}
			return shell.Result{Output: fmt.Sprintf("%s: %s", cmd.Name(), cmd.Description())}
		}

		out := []string{"Available commands:"}
		for _, name := range c.registry.Names() {
			cmd, _ := c.registry.Get(name)
			out = append(out, fmt.Sprintf("  %-10s %s", name, cmd.Description()))
		}
		return shell.Result{Output: strings.Join(out, "\n")}
	})
}

type sysinfoCommand struct {
	started time.Time
}

func (sysinfoCommand) Name() string        { return "sysinfo" }
func (sysinfoCommand) Description() string { return "Display system information" }

func (c sysinfoCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("sysinfo", args, fs, func([]string) shell.Result {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		user, _ := env.Get("USER")
		uptime := time.Since(c.started).Round(time.Second)

		lines := []string{
			fmt.Sprintf("OS:        %s %s", runtime.GOOS, runtime.GOARCH),
			fmt.Sprintf("Runtime:   %s", runtime.Version()),
			fmt.Sprintf("CPUs:      %d", runtime.NumCPU()),
			fmt.Sprintf("Memory:    %.1f MB in use", float64(mem.Alloc)/(1024*1024)),
			fmt.Sprintf("Hostname:  %s", hostname),
			fmt.Sprintf("User:      %s", user),
			fmt.Sprintf("Directory: %s", fs.CurrentPath()),
			"Shell:     vterm",
			fmt.Sprintf("Uptime:    %s", uptime),
		}
		return shell.Result{Output: strings.Join(lines, "\n")}
	})
}
