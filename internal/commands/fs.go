package commands

import (
	"fmt"
	"strings"

	"github.com/vterm/vterm/internal/environ"
	"github.com/vterm/vterm/internal/shell"
	"github.com/vterm/vterm/internal/vfs"
)

type lsCommand struct{}

func (lsCommand) Name() string        { return "ls" }
func (lsCommand) Description() string { return "List directory contents" }

func (lsCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("ls", args, fs, func(operands []string) shell.Result {
		path := ""
		if len(operands) > 0 {
			path = operands[0]
		}
		entries := fs.ListDirectory(path)
		lines := make([]string, 0, len(entries))
		for _, entry := range entries {
			name := entry.Name
			if entry.IsDirectory {
				name += "/"
			}
			lines = append(lines, fmt.Sprintf("%s %8d %s", entry.Permissions, entry.Size, name))
		}
		return shell.Result{Output: strings.Join(lines, "\n")}
	})
}

type cdCommand struct{}

func (cdCommand) Name() string        { return "cd" }
func (cdCommand) Description() string { return "Change directory" }

func (cdCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else if home, ok := env.Get("HOME"); ok {
		path = home
	}
	if !fs.ChangeDirectory(path) {
		return fail("cd: %s: No such file or directory", path)
	}
	env.Set("PWD", fs.CurrentPath())
	return shell.Result{}
}

type pwdCommand struct{}

func (pwdCommand) Name() string        { return "pwd" }
func (pwdCommand) Description() string { return "Print working directory" }

func (pwdCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("pwd", args, fs, func([]string) shell.Result {
		return shell.Result{Output: fs.CurrentPath()}
	})
}

type mkdirCommand struct{}

func (mkdirCommand) Name() string        { return "mkdir" }
func (mkdirCommand) Description() string { return "Create directories" }

func (mkdirCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	operands, _ := splitRedirects(args)
	if len(operands) == 0 {
		return fail("mkdir: missing operand")
	}
	var errors []string
	for _, path := range operands {
		if !fs.Mkdir(path) {
			errors = append(errors, fmt.Sprintf("mkdir: cannot create directory '%s'", path))
		}
	}
	if len(errors) > 0 {
		return shell.Result{ExitCode: 1, Error: strings.Join(errors, "\n")}
	}
	return shell.Result{}
}

type touchCommand struct{}

func (touchCommand) Name() string        { return "touch" }
func (touchCommand) Description() string { return "Create empty files" }

func (touchCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	operands, _ := splitRedirects(args)
	if len(operands) == 0 {
		return fail("touch: missing file operand")
	}
	for _, path := range operands {
		if fs.IsFile(path) {
			continue
		}
		if !fs.Touch(path, "") {
			return fail("touch: cannot create '%s'", path)
		}
	}
	return shell.Result{}
}

type rmCommand struct{}

func (rmCommand) Name() string        { return "rm" }
func (rmCommand) Description() string { return "Remove files and directories" }

func (rmCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	operands, _ := splitRedirects(args)
	if len(operands) == 0 {
		return fail("rm: missing operand")
	}
	var errors []string
	for _, path := range operands {
		if !fs.Remove(path) {
			errors = append(errors, fmt.Sprintf("rm: cannot remove '%s': No such file or directory", path))
		}
	}
	if len(errors) > 0 {
		return shell.Result{ExitCode: 1, Error: strings.Join(errors, "\n")}
	}
	return shell.Result{}
}
