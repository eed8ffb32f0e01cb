package commands

import (
	"path"
	"strings"

	"github.com/vterm/vterm/internal/environ"
	"github.com/vterm/vterm/internal/shell"
	"github.com/vterm/vterm/internal/vfs"
)

type findCommand struct{}

func (findCommand) Name() string        { return "find" }
func (findCommand) Description() string { return "Find files and directories" }

func (findCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("find", args, fs, func(operands []string) shell.Result {
		if len(operands) == 0 {
			return fail("find: missing starting point")
		}
		start := operands[0]

		pattern := ""
		for i := 1; i < len(operands)-1; i++ {
			if operands[i] == "-name" {
				pattern = operands[i+1]
			}
		}

		var results []string
		walk(fs, start, &results)

		if pattern != "" {
			filtered := results[:0]
			for _, p := range results {
				name := p[strings.LastIndex(p, "/")+1:]
				if ok, err := path.Match(pattern, name); err == nil && ok {
					filtered = append(filtered, p)
				}
			}
			results = filtered
		}
		return shell.Result{Output: strings.Join(results, "\n")}
	})
}

// walk collects every path under p, including p itself, using an
// explicit stack so deep trees cannot exhaust the call stack.
func walk(fs *vfs.FS, p string, results *[]string) {
	if !fs.Exists(p) {
		return
	}
	stack := []string{p}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		*results = append(*results, current)

		if !fs.IsDirectory(current) {
			continue
		}
		entries := fs.ListDirectory(current)
		// Push in reverse so entries come out in name order.
		for i := len(entries) - 1; i >= 0; i-- {
			child := current + "/" + entries[i].Name
			child = strings.ReplaceAll(child, "//", "/")
			stack = append(stack, child)
		}
	}
}
