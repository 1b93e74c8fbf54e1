package lablang

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang")
	defer teardown()
	//
	for i, test := range []struct {
		token string
		t     ValueType
	}{
		{`"hello"`, StringType},
		{`""`, StringType},
		{`"`, StringType},
		{`"1"`, StringType},
		{"42", NumberType},
		{"0", NumberType},
		{"3.14", NumberType},
		{"3.", Unknown},
		{".5", Unknown},
		{"-1", Unknown},
		{"1e5", Unknown},
		{"x", IdentifierType},
		{"_tmp", IdentifierType},
		{"TEMP", IdentifierType},
		{"x1_y", IdentifierType},
		{"1x", Unknown},
		{".ENTRY", Unknown},
		{"a-b", Unknown},
		{"", Unknown},
		{"übel", Unknown},
	} {
		if c := Classify(test.token); c != test.t {
			t.Errorf("test %d: expected %q to be %s, is %s", i, test.token, test.t, c)
		}
	}
}

func TestStringPayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang")
	defer teardown()
	//
	for i, test := range []struct {
		token, payload string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"`, ""},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, `a\tb`},
		{"42", "42"},
		{"x", "x"},
	} {
		if p := StringPayload(test.token); p != test.payload {
			t.Errorf("test %d: expected payload %q, have %q", i, test.payload, p)
		}
	}
}

func TestClassifierCompiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang")
	defer teardown()
	//
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("classifier patterns do not compile: %v", r)
		}
	}()
	initClassifier()
	if classifier == nil {
		t.Fatal("expected classifier to be compiled")
	}
	if Classify("x") != IdentifierType || Classify("1") != NumberType {
		t.Errorf("expected compiled classifier to recognize identifiers and numbers")
	}
}
