package grammar

import (
	"strings"

	"github.com/npillmayer/lablang"
	"golang.org/x/text/width"
)

// Line is a line of tokens. The first token is the command, the remaining
// ones are its arguments.
type Line []string

// Command returns the first token of a line, or "" for an empty line.
func (l Line) Command() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Args returns the tokens following the command.
func (l Line) Args() []string {
	if len(l) == 0 {
		return nil
	}
	return l[1:]
}

func (l Line) String() string {
	return strings.Join(l, " ")
}

// Tokenize splits source text into lines of tokens. Carriage returns and
// tabs are removed and the text is trimmed before it is split into lines.
// Every text line results in exactly one Line, which may be empty.
func Tokenize(source string) ([]Line, error) {
	if source == "" {
		return nil, lablang.NewError(lablang.EmptySource, "Empty code.").
			WithReason("Source code cannot be empty.")
	}
	source = strings.NewReplacer("\r", "", "\t", "").Replace(source)
	source = strings.TrimSpace(source)
	textlines := strings.Split(source, "\n")
	lines := make([]Line, 0, len(textlines))
	for i, text := range textlines {
		line, err := TokenizeLine(text, i+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	tracer().Debugf("tokenized %d lines", len(lines))
	return lines, nil
}

// TokenizeLine splits a single line of text into tokens. lineno is used for
// error reporting only.
func TokenizeLine(text string, lineno int) (Line, error) {
	l := lexer{}
	for i, r := range []rune(text) {
		l.step(r, i)
	}
	if l.state == state_string {
		col := displayColumn([]rune(text), l.quote)
		tracer().P("line", lineno).Errorf("unterminated string literal")
		err := lablang.NewError(lablang.UnterminatedString, "String was never ended.").
			At(lineno, text).
			WithHelp("Add the missing `\"` at the end of the string.")
		err.Column = col
		return nil, err
	}
	l.flush()
	return l.tokens, nil
}

// --- Lexer state machine ---------------------------------------------------

type scstate int

const (
	state_start  scstate = iota // between tokens
	state_word                  // inside an unquoted token
	state_string                // inside a string literal
)

type lexer struct {
	state  scstate
	lexeme strings.Builder
	tokens Line
	quote  int // rune index of the opening quote of the current string
}

func (l *lexer) step(r rune, pos int) {
	switch l.state {
	case state_start:
		switch r {
		case ' ':
		case '"':
			l.openString(pos)
		default:
			l.lexeme.WriteRune(r)
			l.state = state_word
		}
	case state_word:
		switch r {
		case ' ':
			l.flush()
		case '"':
			l.flush()
			l.openString(pos)
		default:
			l.lexeme.WriteRune(r)
		}
	case state_string:
		l.lexeme.WriteRune(r)
		if r == '"' {
			l.flush()
		}
	}
}

func (l *lexer) openString(pos int) {
	l.lexeme.WriteRune('"')
	l.quote = pos
	l.state = state_string
}

// flush emits the current lexeme as a token, if there is one.
func (l *lexer) flush() {
	if l.lexeme.Len() > 0 {
		l.tokens = append(l.tokens, l.lexeme.String())
		l.lexeme.Reset()
	}
	l.state = state_start
}

// displayColumn returns the 1-based terminal column of the rune at index pos,
// counting east asian wide runes as two columns.
func displayColumn(runes []rune, pos int) int {
	col := 1
	for _, r := range runes[:pos] {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			col += 2
		default:
			col++
		}
	}
	return col
}
