package lablang

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := NewError(UnknownCommand, "Unknown command `%s`", "foo").At(3, "foo 1 2")
	wrapped := fmt.Errorf("running script: %w", err)
	if !errors.Is(wrapped, ErrUnknownCommand) {
		t.Errorf("expected wrapped error to match its sentinel")
	}
	if errors.Is(wrapped, ErrUsage) {
		t.Errorf("expected error not to match sentinel of other kind")
	}
	if KindOf(wrapped) != UnknownCommand {
		t.Errorf("expected kind UnknownCommand, have %s", KindOf(wrapped))
	}
	if KindOf(errors.New("x")) != NoError {
		t.Errorf("expected foreign error to have no kind")
	}
	if err.Error() != "line 3: Unknown command `foo`" {
		t.Errorf("unexpected error string %q", err.Error())
	}
}

func TestDiagnostic(t *testing.T) {
	err := NewError(Usage, "Expected exactly 2 arguments, found 1").
		At(4, "var x").
		WithUsage("var <variable_name> <variable_value>")
	var b bytes.Buffer
	if e := err.Diagnostic(&b, false); e != nil {
		t.Fatal(e)
	}
	expected := `[Error] Expected exactly 2 arguments, found 1
[Code]
4 | var x
[Usage] var <variable_name> <variable_value>
`
	if b.String() != expected {
		t.Errorf("unexpected diagnostic:\n%s", b.String())
	}
}

func TestDiagnosticCaret(t *testing.T) {
	err := NewError(UnterminatedString, "String was never ended.").At(2, `print "oops`)
	err.Column = 7
	var b bytes.Buffer
	_ = err.Diagnostic(&b, false)
	lines := strings.Split(b.String(), "\n")
	if len(lines) < 4 || lines[3] != "          ^" {
		t.Errorf("expected caret under column 7, have %q", lines)
	}
}

func TestDiagnosticForeign(t *testing.T) {
	var b bytes.Buffer
	_ = WriteDiagnostic(&b, errors.New("disk full"), false)
	if b.String() != "[Error] disk full\n" {
		t.Errorf("unexpected diagnostic %q", b.String())
	}
	b.Reset()
	_ = WriteDiagnostic(&b, NewError(EmptySource, "Empty code.").WithReason("Source code cannot be empty."), false)
	if !strings.Contains(b.String(), "[Reason] Source code cannot be empty.") {
		t.Errorf("expected reason section, have %q", b.String())
	}
	if strings.Contains(b.String(), "[Code]") {
		t.Errorf("expected no code section without source context")
	}
}

func TestFileAccessKind(t *testing.T) {
	err := NewError(FileAccess, "Could not open file `%s`", "x.ll").WithReason("no such file")
	if !errors.Is(err, ErrFileAccess) || KindOf(err) != FileAccess {
		t.Errorf("expected file access error, have kind %s", KindOf(err))
	}
	if FileAccess.String() != "file access" || KindOf(err) == NoError {
		t.Errorf("expected file access kind to be named, is %q", FileAccess.String())
	}
}
