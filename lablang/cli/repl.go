package cli

import (
	"context"
	"io"

	"github.com/npillmayer/lablang"
	"github.com/npillmayer/lablang/evaluator"
	"github.com/npillmayer/lablang/grammar"
	"github.com/npillmayer/lablang/lablang/ui/termui"
)

// runInteractive optionally runs a program file, then prompts for
// instructions. It returns the process exit code.
func runInteractive(ctx context.Context, args []string, s settings) int {
	repl := termui.NewBaseREPL("lablang", "0.1 experimental")
	repl.Helper = writeREPLHelp
	repl.Colored = s.colored
	stdout, _ := repl.Outputs()
	prog := grammar.NewProgram()
	if len(args) > 0 {
		var ok bool
		if prog, ok = loadFile(args[0], stdout, s); !ok {
			return 1
		}
	}
	repl.Interpreter = evaluator.NewInterpreter(prog, s.options(stdout)...)
	if len(args) > 0 {
		if err := repl.Interpreter.Run(ctx); err != nil {
			lablang.WriteDiagnostic(stdout, err, s.colored)
		}
	}
	repl.Prompt(true)
	return 0
}

func writeREPLHelp(w io.Writer) {
	io.WriteString(w, `
Instructions are executed one line at a time, as if they were the only
line of a label named <repl>. Labels cannot be declared interactively;
start lablang with -i and a source file to make its labels available.

Type 'lablang commands' in a shell for a reference of the language.

`)
}
