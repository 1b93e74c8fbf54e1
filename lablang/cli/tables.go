package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/lablang/evaluator"
)

const helloWorld = `label .ENTRY
    print "Hello World"`

// writeCommandReference prints a table of all commands of the language and
// a short example program.
func writeCommandReference(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Command", "Usage", "Description"})
	t.AppendRow(table.Row{"label", "label <label_name>", "Starts a label (a block of instructions)"})
	for _, cmd := range evaluator.Commands() {
		t.AppendRow(table.Row{cmd.Name, cmd.Usage, cmd.Help})
	}
	t.Render()
	fmt.Fprintln(w, "\nTest commands store their result, 1 or 0, in variable TEMP.")
	fmt.Fprintln(w, "Execution starts at label .ENTRY. Example:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, helloWorld)
}

// listLabels loads a program and prints a table of its labels. It returns
// the process exit code.
func listLabels(path string, w io.Writer, s settings) int {
	prog, ok := loadFile(path, w, s)
	if !ok {
		return 1
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Label", "Instructions", "First Line"})
	for _, l := range prog.Labels() {
		if l.Name == "" && len(l.Body) == 0 {
			continue // empty prelude
		}
		name, first := l.Name, "-"
		if name == "" {
			name = "(prelude)"
		}
		if len(l.Body) > 0 {
			first = fmt.Sprintf("%d", l.Body[0].LineNo)
		}
		t.AppendRow(table.Row{name, len(l.Body), first})
	}
	t.Render()
	return 0
}
