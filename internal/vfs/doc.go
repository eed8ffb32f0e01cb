// Package vfs implements the persisted virtual filesystem backing the shell.
//
// The filesystem is an in-memory tree of Node values addressed by
// POSIX-style paths. Every mutating operation writes the whole tree plus
// the current working directory through to a durable JSON snapshot.
//
// Features:
//   - Path resolution relative to the current directory (".", "..")
//   - Create, read, write, append, list, remove
//   - Write-through persistence after every mutation
//   - Canonical initial layout (/home/user, /tmp, /var, /usr/bin)
//   - Snapshot load failures degrade to a fresh in-memory tree
//
// Example Usage:
//
//	fs := vfs.New(state.NewFileStore("terminal_filesystem.json"), logger)
//	fs.Mkdir("/home/user/docs")
//	fs.WriteFile("notes.txt", "hello", false)
//	content, ok := fs.ReadFile("/home/user/notes.txt")
package vfs
