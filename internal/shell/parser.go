package shell

// Pipeline is an ordered list of command stages joined by pipes, plus
// the control operator (And, Or, Semicolon) linking it to the next
// pipeline in the line.
type Pipeline struct {
	Commands [][]string
	Operator Kind
}

// Parse turns a raw line into pipelines. A pending redirection operator
// is concatenated onto the following word as a single argument; a
// dangling redirection with no target is dropped. Empty command segments
// (consecutive pipes) are dropped rather than producing empty vectors.
// The trailing pipeline is tagged Semicolon. Operator adjacency is not
// validated; malformed input parses best-effort.
func Parse(line string) []Pipeline {
	var (
		pipelines []Pipeline
		pipeline  [][]string
		command   []string
		redirect  *Token
	)

	flushCommand := func() {
		if len(command) > 0 {
			pipeline = append(pipeline, command)
			command = nil
		}
	}

	for _, tok := range Tokenize(line) {
		switch tok.Kind {
		case Word:
			if redirect != nil {
				command = append(command, redirect.Text+tok.Text)
				redirect = nil
			} else {
				command = append(command, tok.Text)
			}
		case Pipe:
			flushCommand()
		case And, Or, Semicolon:
			flushCommand()
			if len(pipeline) > 0 {
				pipelines = append(pipelines, Pipeline{Commands: pipeline, Operator: tok.Kind})
				pipeline = nil
			}
		case RedirectOut, RedirectAppend, RedirectIn:
			redirect = &Token{Kind: tok.Kind, Text: tok.Text, Pos: tok.Pos}
		}
	}

	flushCommand()
	if len(pipeline) > 0 {
		pipelines = append(pipelines, Pipeline{Commands: pipeline, Operator: Semicolon})
	}
	return pipelines
}
