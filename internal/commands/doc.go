// Package commands hosts the built-in command set and the registry the
// executor dispatches through.
//
// Every command is a capability unit behind the shell.Command contract:
// it receives parsed arguments, the virtual filesystem, the environment
// store, and a stdin string, and returns a Result. The registry is an
// immutable lookup table constructed once at startup.
//
// Redirection arguments (">file", ">>file", "<file") are folded into the
// argument vector by the parser. Commands honor them through one shared
// helper so the behavior is uniform: "<" substitutes the named file's
// content for the command's output, ">" and ">>" capture the output into
// the named file instead of returning it.
//
// Built-ins:
//   - filesystem: ls, cd, pwd, mkdir, touch, rm
//   - text: echo, cat, grep, sort, head, tail, wc
//   - search: find
//   - environment: export, history, which
//   - system: date, clear, help, sysinfo, save
package commands
