package lablang

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// ValueType represents the dynamic type of a token or of a variable's value.
// Types are never stored, but computed from the text whenever needed.
type ValueType int8

// Value types, in order of classification precedence.
const (
	Unknown ValueType = iota
	StringType
	NumberType
	IdentifierType
)

func (t ValueType) String() string {
	switch t {
	case StringType:
		return "String"
	case NumberType:
		return "Number"
	case IdentifierType:
		return "Identifier"
	}
	return "Unknown"
}

// --- Classification --------------------------------------------------------

var classifier *lexmachine.Lexer
var initOnce sync.Once // monitors one-time compilation of the classifier DFA

// initClassifier compiles the classifier DFA. The patterns are constant, so
// failing to compile them is a programming error.
func initClassifier() {
	initOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeClass(NumberType))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeClass(IdentifierType))
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("cannot compile token classifier: %v", err)
			panic(fmt.Errorf("cannot compile token classifier: %w", err))
		}
		classifier = lexer
	})
}

func makeClass(t ValueType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(t), string(m.Bytes), m), nil
	}
}

// Classify returns the value type of a token. A token is a String if it is
// delimited by double quotes, a Number if it is an unsigned integer or
// decimal, and an Identifier if it looks like a variable name.
// Everything else is of type Unknown.
func Classify(token string) ValueType {
	if IsQuoted(token) {
		return StringType
	}
	return classifyLexeme(token)
}

// classifyLexeme matches a token against the Number and Identifier patterns.
// The match has to span the whole token.
func classifyLexeme(token string) ValueType {
	if token == "" {
		return Unknown
	}
	initClassifier()
	scan, err := classifier.Scanner([]byte(token))
	if err != nil {
		return Unknown
	}
	tok, err, eof := scan.Next()
	if err != nil || eof {
		return Unknown
	}
	t := tok.(*lexmachine.Token)
	if len(t.Lexeme) != len(token) {
		return Unknown
	}
	return ValueType(t.Type)
}

// IsQuoted is a predicate: does a token start and end with a double quote?
// A lone `"` counts as quoted.
func IsQuoted(token string) bool {
	return strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`)
}

// StringPayload returns the content of a string literal: the surrounding
// quotes are removed and escape sequences `\n` are replaced by newlines.
// Tokens which are not string literals are returned unchanged.
func StringPayload(token string) string {
	if !IsQuoted(token) {
		return token
	}
	if len(token) < 2 {
		return ""
	}
	return strings.ReplaceAll(token[1:len(token)-1], `\n`, "\n")
}
