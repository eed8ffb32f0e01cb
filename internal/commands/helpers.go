package commands

import (
	"fmt"
	"strings"

	"github.com/vterm/vterm/internal/shell"
	"github.com/vterm/vterm/internal/vfs"
)

// redirect is one parsed redirection argument.
type redirect struct {
	op     string // ">", ">>" or "<"
	target string
}

// splitRedirects separates redirection arguments from operands.
func splitRedirects(args []string) (operands []string, redirects []redirect) {
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, ">>"):
			redirects = append(redirects, redirect{op: ">>", target: arg[2:]})
		case strings.HasPrefix(arg, ">"):
			redirects = append(redirects, redirect{op: ">", target: arg[1:]})
		case strings.HasPrefix(arg, "<"):
			redirects = append(redirects, redirect{op: "<", target: arg[1:]})
		default:
			operands = append(operands, arg)
		}
	}
	return operands, redirects
}

// withRedirects applies the uniform redirection rule around body:
//   - an input redirect "<file" substitutes the file's content for the
//     command's output, the body never runs
//   - output redirects ">file" / ">>file" capture the command's output
//     into the file and suppress it, whether that output came from the
//     body or from an input substitution
//
// Commands that emit output wrap their body with this helper so every
// built-in treats redirection identically.
func withRedirects(name string, args []string, fs *vfs.FS, body func(operands []string) shell.Result) shell.Result {
	operands, redirects := splitRedirects(args)

	var result shell.Result
	substituted := false
	for _, r := range redirects {
		if r.op != "<" {
			continue
		}
		content, ok := fs.ReadFile(r.target)
		if !ok {
			return fail("%s: %s: No such file or directory", name, r.target)
		}
		result = shell.Result{Output: content}
		substituted = true
		break
	}

	if !substituted {
		result = body(operands)
		if !result.Success() {
			return result
		}
	}

	written := false
	for _, r := range redirects {
		if r.op == "<" {
			continue
		}
		if !fs.WriteFile(r.target, result.Output, r.op == ">>") {
			return fail("%s: cannot write to '%s'", name, r.target)
		}
		written = true
	}
	if written {
		result.Output = ""
	}
	return result
}

// fail builds a nonzero Result with a formatted error message.
func fail(format string, args ...interface{}) shell.Result {
	return shell.Result{ExitCode: 1, Error: fmt.Sprintf(format, args...)}
}

// readSources concatenates file contents, or returns stdin when no
// operands were given. Used by the text filters.
func readSources(name string, operands []string, fs *vfs.FS, stdin string) (string, *shell.Result) {
	if len(operands) == 0 {
		return stdin, nil
	}
	parts := make([]string, 0, len(operands))
	for _, path := range operands {
		content, ok := fs.ReadFile(path)
		if !ok {
			r := fail("%s: %s: No such file or directory", name, path)
			return "", &r
		}
		parts = append(parts, content)
	}
	return strings.Join(parts, "\n"), nil
}

// splitLines splits text into lines, treating empty text as no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
