package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vterm/vterm/internal/environ"
	"github.com/vterm/vterm/internal/shell"
	"github.com/vterm/vterm/internal/vfs"
)

type harness struct {
	fs       *vfs.FS
	env      *environ.Store
	registry *Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		fs:       vfs.New(nil, nil),
		env:      environ.New(nil, 0, nil),
		registry: NewRegistry(),
	}
}

// run dispatches one command the way the executor would.
func (h *harness) run(t *testing.T, name string, args []string, stdin string) shell.Result {
	t.Helper()
	cmd, ok := h.registry.Get(name)
	require.True(t, ok, "command %s not registered", name)
	return cmd.Execute(args, h.fs, h.env, stdin)
}

func TestRegistryContainsBuiltins(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{
		"ls", "cd", "pwd", "mkdir", "touch", "rm",
		"echo", "cat", "grep", "sort", "head", "tail", "wc",
		"find", "export", "history", "which",
		"date", "clear", "help", "sysinfo", "save",
	} {
		_, ok := r.Get(name)
		assert.True(t, ok, name)
	}

	_, ok := r.Get("definitely-not-a-command")
	assert.False(t, ok)

	names := r.Names()
	assert.True(t, sortedStrings(names))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestEcho(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "echo", []string{"hello", "world"}, "")
	assert.True(t, result.Success())
	assert.Equal(t, "hello world", result.Output)

	result = h.run(t, "echo", nil, "")
	assert.Empty(t, result.Output)
}

func TestCat(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.fs.Touch("/tmp/a.txt", "alpha"))
	require.True(t, h.fs.Touch("/tmp/b.txt", "beta"))

	result := h.run(t, "cat", []string{"/tmp/a.txt"}, "")
	assert.Equal(t, "alpha", result.Output)

	result = h.run(t, "cat", []string{"/tmp/a.txt", "/tmp/b.txt"}, "")
	assert.Equal(t, "alpha\nbeta", result.Output)

	// No operands: cat passes stdin through.
	result = h.run(t, "cat", nil, "from stdin")
	assert.Equal(t, "from stdin", result.Output)

	result = h.run(t, "cat", []string{"/tmp/missing"}, "")
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, "cat: /tmp/missing: No such file or directory", result.Error)
}

func TestLs(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.fs.Mkdir("/tmp/sub"))
	require.True(t, h.fs.Touch("/tmp/file.txt", "12345"))

	result := h.run(t, "ls", []string{"/tmp"}, "")
	require.True(t, result.Success())

	lines := strings.Split(result.Output, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "file.txt")
	assert.Contains(t, lines[0], "5")
	assert.Contains(t, lines[1], "sub/")

	// Missing path lists nothing, not an error.
	result = h.run(t, "ls", []string{"/missing"}, "")
	assert.True(t, result.Success())
	assert.Empty(t, result.Output)
}

func TestCdAndPwd(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "cd", []string{"/tmp"}, "")
	require.True(t, result.Success())
	assert.Equal(t, "/tmp", h.fs.CurrentPath())

	pwd, _ := h.env.Get("PWD")
	assert.Equal(t, "/tmp", pwd)

	result = h.run(t, "pwd", nil, "")
	assert.Equal(t, "/tmp", result.Output)

	// cd with no args goes home.
	result = h.run(t, "cd", nil, "")
	require.True(t, result.Success())
	assert.Equal(t, "/home/user", h.fs.CurrentPath())

	result = h.run(t, "cd", []string{"/missing"}, "")
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, "cd: /missing: No such file or directory", result.Error)
}

func TestMkdirTouchRm(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "mkdir", []string{"/tmp/x", "/tmp/y"}, "")
	require.True(t, result.Success())
	assert.True(t, h.fs.IsDirectory("/tmp/x"))
	assert.True(t, h.fs.IsDirectory("/tmp/y"))

	result = h.run(t, "mkdir", []string{"/tmp/x"}, "")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Error, "cannot create directory '/tmp/x'")

	result = h.run(t, "mkdir", nil, "")
	assert.Equal(t, "mkdir: missing operand", result.Error)

	result = h.run(t, "touch", []string{"/tmp/x/f.txt"}, "")
	require.True(t, result.Success())
	assert.True(t, h.fs.IsFile("/tmp/x/f.txt"))

	result = h.run(t, "touch", nil, "")
	assert.Equal(t, "touch: missing file operand", result.Error)

	result = h.run(t, "rm", []string{"/tmp/x"}, "")
	require.True(t, result.Success())
	assert.False(t, h.fs.Exists("/tmp/x"))

	result = h.run(t, "rm", []string{"/tmp/x"}, "")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Error, "No such file or directory")
}

func TestGrep(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.fs.Touch("/tmp/log.txt", "error: one\nok: two\nerror: three"))

	result := h.run(t, "grep", []string{"error", "/tmp/log.txt"}, "")
	assert.Equal(t, "error: one\nerror: three", result.Output)

	result = h.run(t, "grep", []string{"ok"}, "line a\nok here\nline b")
	assert.Equal(t, "ok here", result.Output)

	result = h.run(t, "grep", nil, "")
	assert.Equal(t, "grep: missing pattern", result.Error)

	result = h.run(t, "grep", []string{"x", "/missing"}, "")
	assert.Equal(t, "grep: /missing: No such file or directory", result.Error)
}

func TestSort(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "sort", nil, "banana\napple\ncherry")
	assert.Equal(t, "apple\nbanana\ncherry", result.Output)

	result = h.run(t, "sort", []string{"-r"}, "banana\napple\ncherry")
	assert.Equal(t, "cherry\nbanana\napple", result.Output)

	result = h.run(t, "sort", []string{"-n"}, "10 ten\n2 two\n33 thirty-three")
	assert.Equal(t, "2 two\n10 ten\n33 thirty-three", result.Output)

	result = h.run(t, "sort", []string{"-z"}, "x")
	assert.Equal(t, "sort: invalid option '-z'", result.Error)
}

func TestHeadTail(t *testing.T) {
	h := newHarness(t)
	lines := []string{"l1", "l2", "l3", "l4", "l5"}
	require.True(t, h.fs.Touch("/tmp/f.txt", strings.Join(lines, "\n")))

	result := h.run(t, "head", []string{"-n", "2", "/tmp/f.txt"}, "")
	assert.Equal(t, "l1\nl2", result.Output)

	result = h.run(t, "head", []string{"-n3", "/tmp/f.txt"}, "")
	assert.Equal(t, "l1\nl2\nl3", result.Output)

	result = h.run(t, "tail", []string{"-n", "2", "/tmp/f.txt"}, "")
	assert.Equal(t, "l4\nl5", result.Output)

	// Stdin fallback.
	result = h.run(t, "head", []string{"-n1"}, "a\nb\nc")
	assert.Equal(t, "a", result.Output)

	result = h.run(t, "head", []string{"-n", "nope"}, "")
	assert.Equal(t, "head: invalid number 'nope'", result.Error)

	result = h.run(t, "tail", []string{"-x"}, "")
	assert.Equal(t, "tail: invalid option '-x'", result.Error)
}

func TestHeadTailRejectNegativeCounts(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.fs.Touch("/tmp/f.txt", "l1\nl2\nl3"))

	// Negative counts are rejected as errors, never applied as slice
	// bounds.
	result := h.run(t, "head", []string{"-n", "-1", "/tmp/f.txt"}, "")
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, "head: invalid number '-1'", result.Error)

	result = h.run(t, "tail", []string{"-n-2", "/tmp/f.txt"}, "")
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, "tail: invalid number '-2'", result.Error)

	// A zero count is a valid selection of nothing.
	result = h.run(t, "head", []string{"-n", "0", "/tmp/f.txt"}, "")
	assert.True(t, result.Success())
	assert.Empty(t, result.Output)
}

func TestHeadTailBareCountFlag(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "head", []string{"-n"}, "a\nb")
	assert.Equal(t, "head: option requires an argument -- 'n'", result.Error)

	result = h.run(t, "tail", []string{"-n"}, "a\nb")
	assert.Equal(t, "tail: option requires an argument -- 'n'", result.Error)
}

func TestHeadMultipleFilesHeaders(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.fs.Touch("/tmp/a.txt", "a1\na2"))
	require.True(t, h.fs.Touch("/tmp/b.txt", "b1"))

	result := h.run(t, "head", []string{"/tmp/a.txt", "/tmp/b.txt"}, "")
	assert.Contains(t, result.Output, "==> /tmp/a.txt <==")
	assert.Contains(t, result.Output, "==> /tmp/b.txt <==")
}

func TestWc(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.fs.Touch("/tmp/f.txt", "one two\nthree\n"))

	result := h.run(t, "wc", []string{"/tmp/f.txt"}, "")
	assert.Equal(t, "       2        3       14 /tmp/f.txt", result.Output)

	result = h.run(t, "wc", nil, "a b c")
	assert.Equal(t, "       0        3        5", result.Output)

	require.True(t, h.fs.Touch("/tmp/g.txt", "x\n"))
	result = h.run(t, "wc", []string{"/tmp/f.txt", "/tmp/g.txt"}, "")
	assert.Contains(t, result.Output, "total")
}

func TestFind(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.fs.Mkdir("/tmp/proj"))
	require.True(t, h.fs.Touch("/tmp/proj/main.go", ""))
	require.True(t, h.fs.Mkdir("/tmp/proj/sub"))
	require.True(t, h.fs.Touch("/tmp/proj/sub/util.go", ""))
	require.True(t, h.fs.Touch("/tmp/proj/readme.md", ""))

	result := h.run(t, "find", []string{"/tmp/proj"}, "")
	require.True(t, result.Success())
	paths := strings.Split(result.Output, "\n")
	assert.Contains(t, paths, "/tmp/proj")
	assert.Contains(t, paths, "/tmp/proj/sub/util.go")

	result = h.run(t, "find", []string{"/tmp/proj", "-name", "*.go"}, "")
	paths = strings.Split(result.Output, "\n")
	assert.ElementsMatch(t, []string{"/tmp/proj/main.go", "/tmp/proj/sub/util.go"}, paths)

	result = h.run(t, "find", nil, "")
	assert.Equal(t, "find: missing starting point", result.Error)

	// Nonexistent start yields empty output, matching lookup semantics.
	result = h.run(t, "find", []string{"/nope"}, "")
	assert.True(t, result.Success())
	assert.Empty(t, result.Output)
}

func TestExport(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "export", []string{"PROJECT=vterm"}, "")
	require.True(t, result.Success())
	value, _ := h.env.Get("PROJECT")
	assert.Equal(t, "vterm", value)

	// Value containing '=' splits only on the first.
	h.run(t, "export", []string{"EQ=a=b"}, "")
	value, _ = h.env.Get("EQ")
	assert.Equal(t, "a=b", value)

	// No args enumerates NAME=value pairs.
	result = h.run(t, "export", nil, "")
	assert.Contains(t, result.Output, "PROJECT=vterm")
	assert.Contains(t, result.Output, "USER=user")
}

func TestHistory(t *testing.T) {
	h := newHarness(t)
	h.env.RecordHistory("ls /tmp")
	h.env.RecordHistory("echo hi")

	result := h.run(t, "history", nil, "")
	lines := strings.Split(result.Output, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "   1  ls /tmp", lines[0])
	assert.Equal(t, "   2  echo hi", lines[1])
}

func TestWhich(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "which", []string{"ls", "echo"}, "")
	assert.Equal(t, "/usr/bin/ls\n/usr/bin/echo", result.Output)

	result = h.run(t, "which", []string{"nope"}, "")
	assert.Equal(t, "which: nope: command not found", result.Error)

	result = h.run(t, "which", nil, "")
	assert.Equal(t, "which: missing command name", result.Error)
}

func TestHelp(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "help", nil, "")
	assert.Contains(t, result.Output, "Available commands:")
	assert.Contains(t, result.Output, "ls")

	result = h.run(t, "help", []string{"wc"}, "")
	assert.Equal(t, "wc: Count lines, words, and characters", result.Output)

	result = h.run(t, "help", []string{"nope"}, "")
	assert.Equal(t, "help: no help topics match 'nope'", result.Error)
}

func TestDateClearSysinfo(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "date", nil, "")
	assert.True(t, result.Success())
	assert.NotEmpty(t, result.Output)

	result = h.run(t, "clear", nil, "")
	assert.Equal(t, "\033[2J\033[H", result.Output)

	result = h.run(t, "sysinfo", nil, "")
	assert.Contains(t, result.Output, "OS:")
	assert.Contains(t, result.Output, "Directory: "+h.fs.CurrentPath())
}

func TestSave(t *testing.T) {
	h := newHarness(t)

	result := h.run(t, "save", nil, "")
	assert.True(t, result.Success())
	assert.Contains(t, result.Output, "saved successfully")
}
