package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vterm/vterm/internal/commands"
	"github.com/vterm/vterm/internal/environ"
	"github.com/vterm/vterm/internal/logging"
	"github.com/vterm/vterm/internal/shared/styles"
	"github.com/vterm/vterm/internal/shell"
	"github.com/vterm/vterm/internal/vfs"
)

// Session binds the stores, registry, and executor to an input/output
// pair for one interactive run.
type Session struct {
	ID string

	fs       *vfs.FS
	env      *environ.Store
	registry *commands.Registry
	exec     *shell.Executor
	log      *logging.Logger

	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool
	promptText  string
}

// New creates a session wired to stdin/stdout/stderr. The prompt and
// banner are enabled only when stdin is a terminal.
func New(fs *vfs.FS, env *environ.Store, registry *commands.Registry, log *logging.Logger) *Session {
	if log == nil {
		log = logging.NewNop()
	}
	return &Session{
		ID:          uuid.NewString(),
		fs:          fs,
		env:         env,
		registry:    registry,
		exec:        shell.NewExecutor(fs, env, registry, log),
		log:         log,
		in:          os.Stdin,
		out:         os.Stdout,
		errOut:      os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// SetIO redirects the session's streams. interactive controls prompt
// and banner display. Used by script mode and tests.
func (s *Session) SetIO(in io.Reader, out, errOut io.Writer, interactive bool) {
	s.in = in
	s.out = out
	s.errOut = errOut
	s.interactive = interactive
}

// SetPrompt installs a fixed prompt override. Empty restores the
// default "user:path$ " rendering.
func (s *Session) SetPrompt(prompt string) {
	s.promptText = prompt
}

// Prompt renders "user:path$ ". The current path collapses to ~ when it
// equals the user's home directory.
func (s *Session) Prompt() string {
	if s.promptText != "" {
		return s.promptText
	}
	user, _ := s.env.Get("USER")
	if user == "" {
		user = "user"
	}
	path := s.fs.CurrentPath()
	if path == "/home/"+user {
		path = "~"
	}
	if !s.interactive {
		return fmt.Sprintf("%s:%s$ ", user, path)
	}
	return styles.User.Render(user) + ":" + styles.Path.Render(path) + styles.Dollar.Render("$") + " "
}

// Complete returns completion candidates for the final word of line:
// command names in first-word position, current-directory entries
// otherwise.
func (s *Session) Complete(line string) []string {
	prefix := line
	firstWord := true
	if idx := strings.LastIndexByte(line, ' '); idx >= 0 {
		prefix = line[idx+1:]
		firstWord = strings.TrimSpace(line[:idx]) == ""
	}

	var matches []string
	if firstWord {
		for _, name := range s.registry.Names() {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}
		return matches
	}
	for _, entry := range s.fs.ListDirectory("") {
		if strings.HasPrefix(entry.Name, prefix) {
			matches = append(matches, entry.Name)
		}
	}
	return matches
}

// RunLine records one line in history, executes it, and writes its
// output and error to the session streams. It reports whether the
// session should keep running.
func (s *Session) RunLine(line string) bool {
	if trimmed := strings.ToLower(strings.TrimSpace(line)); trimmed == "exit" || trimmed == "quit" {
		s.println(styles.User.Render("Goodbye!"))
		return false
	}

	s.env.RecordHistory(line)
	result := s.run(line)

	if result.Output != "" {
		s.println(result.Output)
	}
	if result.Error != "" {
		msg := "Error: " + result.Error
		if s.interactive {
			msg = styles.ErrorText.Render(msg)
		}
		fmt.Fprintln(s.errOut, msg)
	}
	return true
}

// run guards the executor with a final recover so no fault can take
// down the loop.
func (s *Session) run(line string) (result shell.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("unexpected fault", zap.Any("panic", r))
			result = shell.Result{ExitCode: 1, Error: fmt.Sprintf("unexpected error: %v", r)}
		}
	}()
	s.log.Debug("executing line", zap.String("line", line), zap.String("session", s.ID))
	return s.exec.RunLine(line)
}

// Run is the main loop: read, execute, repeat until EOF or exit. An
// interrupt aborts the pending input line and re-prompts.
func (s *Session) Run() {
	if s.interactive {
		s.println(styles.Banner.Render("vterm v1.0"))
		s.println(styles.Info.Render("Persistent filesystem enabled - files and settings are saved automatically."))
		s.println("Type " + styles.User.Render("help") + " for available commands, " + styles.User.Render("exit") + " to quit.")
		s.println("")
	}

	interrupts := make(chan os.Signal, 1)
	if s.interactive {
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)
		go func() {
			for range interrupts {
				fmt.Fprintln(s.errOut, styles.Warning.Render("^C"))
			}
		}()
	}

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if s.interactive {
			fmt.Fprint(s.out, s.Prompt())
		}
		if !scanner.Scan() {
			if s.interactive {
				s.println("\n" + styles.User.Render("Goodbye!"))
			}
			return
		}
		if !s.RunLine(scanner.Text()) {
			return
		}
	}
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}
