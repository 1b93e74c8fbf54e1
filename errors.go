package lablang

import (
	"errors"
	"fmt"
	"io"
	"strings"

	prtxt "github.com/jedib0t/go-pretty/v6/text"
)

// ErrorKind enumerates the faults the interpreter is able to detect.
// All of them are fatal for a program run.
type ErrorKind int

// Error kinds, grouped by the phase detecting them.
const (
	NoError ErrorKind = iota
	// source file faults
	FileAccess
	EmptySource
	UnterminatedString
	// structural faults
	LabelUsage
	DuplicateLabel
	MissingEntry
	// runtime faults
	Usage
	UnknownCommand
	UndefinedVariable
	UndefinedLabel
	RequiredVariable
	NotANumber
	VariableCycle
	StackExhausted
	Interrupted
)

var kindNames = [...]string{
	"no error", "file access", "empty source", "unterminated string",
	"malformed label", "duplicate label", "missing entry label",
	"usage", "unknown command", "undefined variable", "undefined label",
	"required variable missing", "not a number", "variable cycle",
	"control stack exhausted", "interrupted",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("error kind %d", int(k))
	}
	return kindNames[k]
}

// Sentinel errors, one per error kind. Clients use errors.Is to check for
// a specific kind of fault:
//
//    if errors.Is(err, lablang.ErrUnknownCommand) { … }
//
var (
	ErrFileAccess         = kindError(FileAccess)
	ErrEmptySource        = kindError(EmptySource)
	ErrUnterminatedString = kindError(UnterminatedString)
	ErrLabelUsage         = kindError(LabelUsage)
	ErrDuplicateLabel     = kindError(DuplicateLabel)
	ErrMissingEntry       = kindError(MissingEntry)
	ErrUsage              = kindError(Usage)
	ErrUnknownCommand     = kindError(UnknownCommand)
	ErrUndefinedVariable  = kindError(UndefinedVariable)
	ErrUndefinedLabel     = kindError(UndefinedLabel)
	ErrRequiredVariable   = kindError(RequiredVariable)
	ErrNotANumber         = kindError(NotANumber)
	ErrVariableCycle      = kindError(VariableCycle)
	ErrStackExhausted     = kindError(StackExhausted)
	ErrInterrupted        = kindError(Interrupted)
)

var sentinels = map[ErrorKind]error{}

func kindError(k ErrorKind) error {
	err := errors.New(k.String())
	sentinels[k] = err
	return err
}

// --- Error -----------------------------------------------------------------

// Error is an error detected while loading or executing a program.
// Besides a message it carries the source context of the fault, and
// optional hints for the user.
type Error struct {
	Kind    ErrorKind
	Message string // human readable description
	LineNo  int    // 1-based source line, 0 if not applicable
	Code    string // text of the offending line
	Column  int    // display column to mark in Code, 0 for none
	Usage   string // usage string of a command
	Help    string // hint how to fix the problem
	Note    string // additional information
	Reason  string // underlying cause, e.g. an I/O error
}

// NewError creates an error of kind k with a formatted message.
func NewError(k ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    k,
		Message: fmt.Sprintf(format, args...),
	}
}

// At sets the source context of an error.
func (e *Error) At(lineno int, code string) *Error {
	e.LineNo = lineno
	e.Code = code
	return e
}

// WithUsage attaches a usage string.
func (e *Error) WithUsage(usage string) *Error {
	e.Usage = usage
	return e
}

// WithHelp attaches a help text.
func (e *Error) WithHelp(help string) *Error {
	e.Help = help
	return e
}

// WithNote attaches a note.
func (e *Error) WithNote(note string) *Error {
	e.Note = note
	return e
}

// WithReason attaches the underlying cause in readable form.
func (e *Error) WithReason(reason string) *Error {
	e.Reason = reason
	return e
}

func (e *Error) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("line %d: %s", e.LineNo, e.Message)
	}
	return e.Message
}

// Is lets errors.Is match an Error against the sentinel of its kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.Kind == e.Kind
	}
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the error kind of err, or NoError if err is not an
// interpreter error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

// --- Diagnostics -----------------------------------------------------------

var headerColor = prtxt.Colors{prtxt.FgRed, prtxt.Bold}
var hintColor = prtxt.Colors{prtxt.FgYellow}

// Diagnostic writes a diagnostic block for an error, of the form
//
//    [Error] Unknown command `foo`
//    [Code]
//    3 | foo 1 2
//
// followed by optional [Usage], [Help], [Note] and [Reason] sections.
// If colored is set, section headers use terminal colors.
func (e *Error) Diagnostic(w io.Writer, colored bool) error {
	var b strings.Builder
	header := func(h string, c prtxt.Colors) string {
		if colored {
			return c.Sprint(h)
		}
		return h
	}
	b.WriteString(header("[Error] ", headerColor) + e.Message + "\n")
	if e.Code != "" || e.LineNo > 0 {
		b.WriteString(header("[Code]", hintColor) + "\n")
		gutter := fmt.Sprintf("%d | ", e.LineNo)
		b.WriteString(gutter + e.Code + "\n")
		if e.Column > 0 {
			b.WriteString(strings.Repeat(" ", len(gutter)+e.Column-1) + "^\n")
		}
	}
	if e.Usage != "" {
		b.WriteString(header("[Usage] ", hintColor) + e.Usage + "\n")
	}
	if e.Help != "" {
		b.WriteString(header("[Help] ", hintColor) + e.Help + "\n")
	}
	if e.Note != "" {
		b.WriteString(header("[Note] ", hintColor) + e.Note + "\n")
	}
	if e.Reason != "" {
		b.WriteString(header("[Reason] ", hintColor) + e.Reason + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteDiagnostic writes a diagnostic block for any error. Errors which are
// not of type *Error are reported without source context.
func WriteDiagnostic(w io.Writer, err error, colored bool) error {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Message: err.Error()}
	}
	return e.Diagnostic(w, colored)
}
