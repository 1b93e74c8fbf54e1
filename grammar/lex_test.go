package grammar

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/lablang"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenizeLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.grammar")
	defer teardown()
	//
	for i, test := range []struct {
		text   string
		tokens Line
	}{
		{text: "print x", tokens: Line{"print", "x"}},
		{text: "   var  x   1  ", tokens: Line{"var", "x", "1"}},
		{text: `print "Hello World"`, tokens: Line{"print", `"Hello World"`}},
		{text: `print ""`, tokens: Line{"print", `""`}},
		{text: `var s "a\nb"`, tokens: Line{"var", "s", `"a\nb"`}},
		{text: `cmd_eq "x y" "x y" print "hit"`, tokens: Line{"cmd_eq", `"x y"`, `"x y"`, "print", `"hit"`}},
		{text: `ab"cd"ef`, tokens: Line{"ab", `"cd"`, "ef"}},
		{text: "", tokens: nil},
		{text: "     ", tokens: nil},
	} {
		tokens, err := TokenizeLine(test.text, i+1)
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if len(tokens) == 0 && len(test.tokens) == 0 {
			continue
		}
		if !reflect.DeepEqual(tokens, test.tokens) {
			t.Errorf("test %d: expected %q, have %q", i, test.tokens, tokens)
		}
	}
}

func TestTokenizeUnterminated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.grammar")
	defer teardown()
	//
	_, err := Tokenize("label .ENTRY\n  print \"oops\n")
	if !errors.Is(err, lablang.ErrUnterminatedString) {
		t.Fatalf("expected unterminated string error, have %v", err)
	}
	var e *lablang.Error
	errors.As(err, &e)
	if e.LineNo != 2 {
		t.Errorf("expected error in line 2, have %d", e.LineNo)
	}
	if e.Code != `  print "oops` {
		t.Errorf("expected line text in error, have %q", e.Code)
	}
	if e.Column != 9 {
		t.Errorf("expected opening quote at column 9, have %d", e.Column)
	}
}

func TestTokenizeWideColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.grammar")
	defer teardown()
	//
	_, err := TokenizeLine(`cmt 日本 "x`, 1)
	var e *lablang.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected an error, have %v", err)
	}
	if e.Column != 10 { // "cmt " = 4, two wide runes = 4, space = 1
		t.Errorf("expected caret at column 10, have %d", e.Column)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.grammar")
	defer teardown()
	//
	if _, err := Tokenize(""); !errors.Is(err, lablang.ErrEmptySource) {
		t.Errorf("expected empty source error, have %v", err)
	}
}

func TestTokenizeStripsTabsAndReturns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.grammar")
	defer teardown()
	//
	lines, err := Tokenize("\n\nlabel .ENTRY\r\n\tprint\t\"a\tb\"\r\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after trimming, have %d", len(lines))
	}
	if !reflect.DeepEqual(lines[1], Line{"print", `"ab"`}) {
		t.Errorf("unexpected tokens %q", lines[1])
	}
}

func TestStringPayloadRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.grammar")
	defer teardown()
	//
	line, err := TokenizeLine(`print "a\nb"`, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p := lablang.StringPayload(line[1]); p != "a\nb" {
		t.Errorf("expected two-line payload, have %q", p)
	}
}
