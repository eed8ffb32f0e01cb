package shell

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vterm/vterm/internal/environ"
	"github.com/vterm/vterm/internal/logging"
	"github.com/vterm/vterm/internal/vfs"
)

// Result is the outcome of a command or a whole line.
type Result struct {
	ExitCode int
	Output   string
	Error    string
}

// Success reports a zero exit code.
func (r Result) Success() bool { return r.ExitCode == 0 }

// Command is the capability contract every built-in implements.
type Command interface {
	Name() string
	Description() string
	Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) Result
}

// Registry is the name-to-command lookup the executor dispatches through.
type Registry interface {
	Get(name string) (Command, bool)
}

// Executor runs parsed pipelines against the filesystem and environment.
type Executor struct {
	fs       *vfs.FS
	env      *environ.Store
	registry Registry
	log      *logging.Logger
}

// NewExecutor creates an executor. The registry is built once at startup
// and passed by reference; the executor never mutates it.
func NewExecutor(fs *vfs.FS, env *environ.Store, registry Registry, log *logging.Logger) *Executor {
	if log == nil {
		log = logging.NewNop()
	}
	return &Executor{fs: fs, env: env, registry: registry, log: log}
}

// RunLine executes a complete command line: every pipeline in order,
// honoring the control operator between them. A blank line succeeds
// without parsing. The returned Result is the last pipeline's.
func (e *Executor) RunLine(line string) Result {
	if strings.TrimSpace(line) == "" {
		return Result{}
	}

	pipelines := Parse(line)
	if len(pipelines) == 0 {
		return Result{}
	}

	last := Result{}
	for _, pipeline := range pipelines {
		last = e.runPipeline(pipeline)

		if pipeline.Operator == And && !last.Success() {
			break
		}
		if pipeline.Operator == Or && last.Success() {
			break
		}
	}
	return last
}

// runPipeline executes each stage, threading output into the next
// stage's stdin. A failing stage abandons the rest of a multi-stage
// pipeline. An unknown command name fails the whole pipeline.
func (e *Executor) runPipeline(pipeline Pipeline) Result {
	stdin := ""
	last := Result{}

	for i, argv := range pipeline.Commands {
		if len(argv) == 0 {
			continue
		}

		expanded := make([]string, len(argv))
		for j, arg := range argv {
			expanded[j] = e.env.Expand(arg)
		}

		name := expanded[0]
		command, ok := e.registry.Get(name)
		if !ok {
			return Result{ExitCode: 1, Error: fmt.Sprintf("Command not found: %s", name)}
		}

		result := e.invoke(command, expanded[1:], stdin)
		last = result

		if i < len(pipeline.Commands)-1 {
			stdin = result.Output
		}
		if !result.Success() && len(pipeline.Commands) > 1 {
			break
		}
	}
	return last
}

// invoke runs one command, converting a panic into a failure Result so
// no fault escapes the executor boundary.
func (e *Executor) invoke(command Command, args []string, stdin string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("command panicked",
				zap.String("command", command.Name()),
				zap.Any("panic", r))
			result = Result{ExitCode: 1, Error: fmt.Sprintf("%v", r)}
		}
	}()
	return command.Execute(args, e.fs, e.env, stdin)
}
