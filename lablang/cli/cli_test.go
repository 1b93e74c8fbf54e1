package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/lablang"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gopkg.in/yaml.v3"
)

func TestRunTutorial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	code := runFile(context.Background(), "../../examples/tutorial.ll", &stdout, &stderr, testSettings())
	if code != 0 {
		t.Fatalf("expected tutorial to run, exit code is %d:\n%s", code, stdout.String())
	}
	expected := "Welcome to lablang\nHello\nWorld\ncount is greater than 2\nBye\n"
	if stdout.String() != expected {
		t.Errorf("unexpected output of tutorial:\n%s", stdout.String())
	}
}

func TestRunDiagnostic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.cli")
	defer teardown()
	//
	path := writeScript(t, "label .ENTRY\n    print \"before\"\n    foo 1 2\n    print \"after\"")
	var stdout, stderr bytes.Buffer
	if code := runFile(context.Background(), path, &stdout, &stderr, testSettings()); code != 1 {
		t.Errorf("expected exit code 1, have %d", code)
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "before\n[Error] Unknown command `foo`\n") {
		t.Errorf("expected output followed by diagnostic, have\n%s", out)
	}
	if !strings.Contains(out, "3 | foo 1 2") || strings.Contains(out, "after") {
		t.Errorf("unexpected diagnostic\n%s", out)
	}
}

func TestRunMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "nothere.ll")
	if code := runFile(context.Background(), path, &stdout, &stderr, testSettings()); code != 1 {
		t.Errorf("expected exit code 1, have %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "[Error] Could not open file `"+path+"`\n") ||
		!strings.Contains(stdout.String(), "[Reason] ") {
		t.Errorf("unexpected diagnostic\n%s", stdout.String())
	}
	_, err := readProgram(path)
	if !errors.Is(err, lablang.ErrFileAccess) || lablang.KindOf(err) != lablang.FileAccess {
		t.Errorf("expected file access error, have %v (kind %s)", err, lablang.KindOf(err))
	}
}

func TestRunEmptyFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.cli")
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	path := writeScript(t, "")
	if code := runFile(context.Background(), path, &stdout, &stderr, testSettings()); code != 1 {
		t.Errorf("expected exit code 1, have %d", code)
	}
	if !strings.Contains(stdout.String(), "[Reason] Source code cannot be empty.") {
		t.Errorf("unexpected diagnostic\n%s", stdout.String())
	}
}

func TestDumpVars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.cli")
	defer teardown()
	//
	path := writeScript(t, "label .ENTRY\nvar n 7\nvar s \"abc\"\ntest_lt n 10")
	s := testSettings()
	s.dumpVars = true
	var stdout, stderr bytes.Buffer
	if code := runFile(context.Background(), path, &stdout, &stderr, s); code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	vars := map[string]string{}
	if err := yaml.Unmarshal(stderr.Bytes(), &vars); err != nil {
		t.Fatalf("variable dump is not valid YAML: %v", err)
	}
	if vars["n"] != "7" || vars["s"] != `"abc"` || vars["TEMP"] != "1" || len(vars) != 3 {
		t.Errorf("unexpected variable dump %v", vars)
	}
}

func TestUsageAndReference(t *testing.T) {
	var b bytes.Buffer
	writeUsage(&b)
	if !strings.HasPrefix(b.String(), "[Usage] lablang <source_code_file>\n") {
		t.Errorf("unexpected usage\n%s", b.String())
	}
	b.Reset()
	writeCommandReference(&b)
	for _, s := range []string{"test_lt_eq <number1> <number2>", "cmd_eq", "label <label_name>", helloWorld} {
		if !strings.Contains(b.String(), s) {
			t.Errorf("expected command reference to contain %q", s)
		}
	}
}

func TestListLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lablang.cli")
	defer teardown()
	//
	var b bytes.Buffer
	if code := listLabels("../../examples/tutorial.ll", &b, testSettings()); code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	for _, s := range []string{".ENTRY", ".GREET", "(prelude)"} {
		if !strings.Contains(b.String(), s) {
			t.Errorf("expected label table to contain %q\n%s", s, b.String())
		}
	}
}

// --- Helpers ---------------------------------------------------------------

func testSettings() settings {
	return settings{maxDepth: 64}
}

func writeScript(t *testing.T, src string) string {
	path := filepath.Join(t.TempDir(), "test.ll")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
