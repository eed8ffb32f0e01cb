// Package shell implements the command-line core: tokenizer, pipeline
// parser, and executor.
//
// A raw line moves through three phases:
//   - Tokenize: flat tokens (words, operators), total, never fails
//   - Parse: pipelines of argument vectors tagged with a control operator
//   - Execute: stages run through the command registry with in-memory
//     stdout-to-stdin hand-off and AND/OR/SEMICOLON short-circuiting
//
// Redirection is not interpreted here. A pending redirection operator is
// folded into its target word (">out.txt") and travels as an ordinary
// argument for the receiving command to honor.
//
// Example Usage:
//
//	exec := shell.NewExecutor(fs, env, registry, logger)
//	result := exec.RunLine(`echo hello | wc`)
package shell
