// Package session drives the interactive terminal loop.
//
// A session owns the prompt, the read-eval-print cycle, history
// recording, and graceful shutdown. One session is exactly one logical
// thread of control: a line is tokenized, parsed, and executed to
// completion before the next is read.
//
// Behavior:
//   - TTY stdin: styled prompt and welcome banner
//   - non-TTY stdin: script mode, no prompt, lines run until EOF
//   - "exit"/"quit": clean termination
//   - interrupt: aborts the current input line only
//   - EOF: clean termination, state already persisted write-through
//
// Any fault escaping a command is printed and the loop continues; the
// only clean exit paths are EOF and the exit built-ins.
package session
