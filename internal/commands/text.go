package commands

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vterm/vterm/internal/environ"
	"github.com/vterm/vterm/internal/shell"
	"github.com/vterm/vterm/internal/vfs"
)

type echoCommand struct{}

func (echoCommand) Name() string        { return "echo" }
func (echoCommand) Description() string { return "Echo arguments" }

func (echoCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("echo", args, fs, func(operands []string) shell.Result {
		return shell.Result{Output: strings.Join(operands, " ")}
	})
}

type catCommand struct{}

func (catCommand) Name() string        { return "cat" }
func (catCommand) Description() string { return "Display file contents" }

func (catCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("cat", args, fs, func(operands []string) shell.Result {
		if len(operands) == 0 {
			return shell.Result{Output: stdin}
		}
		parts := make([]string, 0, len(operands))
		for _, path := range operands {
			content, ok := fs.ReadFile(path)
			if !ok {
				return fail("cat: %s: No such file or directory", path)
			}
			parts = append(parts, content)
		}
		return shell.Result{Output: strings.Join(parts, "\n")}
	})
}

type grepCommand struct{}

func (grepCommand) Name() string        { return "grep" }
func (grepCommand) Description() string { return "Search for patterns in text" }

func (grepCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("grep", args, fs, func(operands []string) shell.Result {
		if len(operands) == 0 {
			return fail("grep: missing pattern")
		}
		pattern := operands[0]

		text, errResult := readSources("grep", operands[1:], fs, stdin)
		if errResult != nil {
			return *errResult
		}

		var matched []string
		for _, line := range splitLines(text) {
			if strings.Contains(line, pattern) {
				matched = append(matched, line)
			}
		}
		return shell.Result{Output: strings.Join(matched, "\n")}
	})
}

var firstNumber = regexp.MustCompile(`-?\d+`)

type sortCommand struct{}

func (sortCommand) Name() string        { return "sort" }
func (sortCommand) Description() string { return "Sort lines of text" }

func (sortCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("sort", args, fs, func(operands []string) shell.Result {
		reverse := false
		numeric := false
		var files []string

		for _, arg := range operands {
			switch {
			case arg == "-r":
				reverse = true
			case arg == "-n":
				numeric = true
			case strings.HasPrefix(arg, "-"):
				return fail("sort: invalid option '%s'", arg)
			default:
				files = append(files, arg)
			}
		}

		text, errResult := readSources("sort", files, fs, stdin)
		if errResult != nil {
			return *errResult
		}

		lines := splitLines(text)
		if numeric {
			key := func(line string) int {
				n, _ := strconv.Atoi(firstNumber.FindString(line))
				return n
			}
			sort.SliceStable(lines, func(i, j int) bool {
				if reverse {
					return key(lines[i]) > key(lines[j])
				}
				return key(lines[i]) < key(lines[j])
			})
		} else {
			sort.Strings(lines)
			if reverse {
				for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
					lines[i], lines[j] = lines[j], lines[i]
				}
			}
		}
		return shell.Result{Output: strings.Join(lines, "\n")}
	})
}

// parseLineCount handles the "-n N" and "-nN" flag forms shared by head
// and tail. Counts must be non-negative. It returns the remaining
// operands.
func parseLineCount(name string, operands []string) (int, []string, *shell.Result) {
	count := 10
	var files []string
	for i := 0; i < len(operands); i++ {
		arg := operands[i]
		switch {
		case arg == "-n" && i+1 < len(operands):
			n, err := strconv.Atoi(operands[i+1])
			if err != nil || n < 0 {
				r := fail("%s: invalid number '%s'", name, operands[i+1])
				return 0, nil, &r
			}
			count = n
			i++
		case arg == "-n":
			r := fail("%s: option requires an argument -- 'n'", name)
			return 0, nil, &r
		case strings.HasPrefix(arg, "-n"):
			n, err := strconv.Atoi(arg[2:])
			if err != nil || n < 0 {
				r := fail("%s: invalid number '%s'", name, arg[2:])
				return 0, nil, &r
			}
			count = n
		case strings.HasPrefix(arg, "-"):
			r := fail("%s: invalid option '%s'", name, arg)
			return 0, nil, &r
		default:
			files = append(files, arg)
		}
	}
	return count, files, nil
}

// selectLines renders the head/tail selection across one or more files,
// adding "==> file <==" headers when several files are named.
func selectLines(name string, count int, files []string, fs *vfs.FS, stdin string, fromEnd bool) shell.Result {
	pick := func(lines []string) []string {
		if fromEnd {
			if len(lines) > count {
				return lines[len(lines)-count:]
			}
			return lines
		}
		if len(lines) > count {
			return lines[:count]
		}
		return lines
	}

	if len(files) == 0 {
		return shell.Result{Output: strings.Join(pick(splitLines(stdin)), "\n")}
	}

	var parts []string
	for _, path := range files {
		content, ok := fs.ReadFile(path)
		if !ok {
			return fail("%s: %s: No such file or directory", name, path)
		}
		selected := strings.Join(pick(strings.Split(content, "\n")), "\n")
		if len(files) > 1 {
			parts = append(parts, fmt.Sprintf("==> %s <==", path), selected)
		} else {
			parts = append(parts, selected)
		}
	}
	return shell.Result{Output: strings.Join(parts, "\n")}
}

type headCommand struct{}

func (headCommand) Name() string        { return "head" }
func (headCommand) Description() string { return "Display first lines of files" }

func (headCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("head", args, fs, func(operands []string) shell.Result {
		count, files, errResult := parseLineCount("head", operands)
		if errResult != nil {
			return *errResult
		}
		return selectLines("head", count, files, fs, stdin, false)
	})
}

type tailCommand struct{}

func (tailCommand) Name() string        { return "tail" }
func (tailCommand) Description() string { return "Display last lines of files" }

func (tailCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	return withRedirects("tail", args, fs, func(operands []string) shell.Result {
		count, files, errResult := parseLineCount("tail", operands)
		if errResult != nil {
			return *errResult
		}
		return selectLines("tail", count, files, fs, stdin, true)
	})
}

type wcCommand struct{}

func (wcCommand) Name() string        { return "wc" }
func (wcCommand) Description() string { return "Count lines, words, and characters" }

func (wcCommand) Execute(args []string, fs *vfs.FS, env *environ.Store, stdin string) shell.Result {
	count := func(text string) (lines, words, chars int) {
		return strings.Count(text, "\n"), len(strings.Fields(text)), len(text)
	}

	return withRedirects("wc", args, fs, func(operands []string) shell.Result {
		if len(operands) == 0 {
			lines, words, chars := count(stdin)
			return shell.Result{Output: fmt.Sprintf("%8d %8d %8d", lines, words, chars)}
		}

		var out []string
		var totalLines, totalWords, totalChars int
		for _, path := range operands {
			content, ok := fs.ReadFile(path)
			if !ok {
				return fail("wc: %s: No such file or directory", path)
			}
			lines, words, chars := count(content)
			totalLines += lines
			totalWords += words
			totalChars += chars
			out = append(out, fmt.Sprintf("%8d %8d %8d %s", lines, words, chars, path))
		}
		if len(operands) > 1 {
			out = append(out, fmt.Sprintf("%8d %8d %8d total", totalLines, totalWords, totalChars))
		}
		return shell.Result{Output: strings.Join(out, "\n")}
	})
}
