package shell

// Kind classifies a token.
type Kind string

const (
	Word           Kind = "WORD"
	Pipe           Kind = "PIPE"
	And            Kind = "AND"
	Or             Kind = "OR"
	Semicolon      Kind = "SEMICOLON"
	RedirectOut    Kind = "REDIRECT_OUT"
	RedirectAppend Kind = "REDIRECT_APPEND"
	RedirectIn     Kind = "REDIRECT_IN"
)

// Token is one lexical unit of a command line. Pos is the byte offset of
// the token's first character in the input.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

var twoCharOps = map[string]Kind{
	"&&": And,
	"||": Or,
	">>": RedirectAppend,
}

var oneCharOps = map[byte]Kind{
	'|': Pipe,
	';': Semicolon,
	'>': RedirectOut,
	'<': RedirectIn,
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// Tokenize splits line into tokens. Two-character operators are matched
// greedily before single-character ones. A single- or double-quoted run
// becomes one verbatim word; an unterminated quote consumes to end of
// input. Tokenization is total: malformed input yields a best-effort
// sequence, never an error.
func Tokenize(line string) []Token {
	var tokens []Token
	i := 0
	for i < len(line) {
		c := line[i]

		if isSpace(c) {
			i++
			continue
		}

		if i+1 < len(line) {
			if kind, ok := twoCharOps[line[i:i+2]]; ok {
				tokens = append(tokens, Token{Kind: kind, Text: line[i : i+2], Pos: i})
				i += 2
				continue
			}
		}

		if kind, ok := oneCharOps[c]; ok {
			tokens = append(tokens, Token{Kind: kind, Text: string(c), Pos: i})
			i++
			continue
		}

		if c == '"' || c == '\'' {
			quote := c
			start := i
			i++
			wordStart := i
			for i < len(line) && line[i] != quote {
				i++
			}
			word := line[wordStart:i]
			if i < len(line) {
				i++ // closing quote
			}
			tokens = append(tokens, Token{Kind: Word, Text: word, Pos: start})
			continue
		}

		start := i
		for i < len(line) && !isSpace(line[i]) {
			if _, ok := oneCharOps[line[i]]; ok {
				break
			}
			i++
		}
		tokens = append(tokens, Token{Kind: Word, Text: line[start:i], Pos: start})
	}
	return tokens
}
