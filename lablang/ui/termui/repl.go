package termui

// Utilities for interactive command line interfaces.

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/lablang"
	"github.com/npillmayer/lablang/evaluator"
	"github.com/npillmayer/lablang/grammar"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var stdprompt = prtxt.FgGreen.Sprintf("%s", "%s> ")

// BaseREPL reads lines from the terminal and executes them with a lablang
// interpreter. Variables persist from line to line, and labels of the
// interpreter's program may be called.
//
// Lines are tokenized like program source. A line starting with one of the
// administrative commands (help, bye, mode, setprompt, vars) is executed by
// the REPL itself, every other line goes to the interpreter.
type BaseREPL struct {
	Interpreter *evaluator.Interpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out additional help information
	Colored     bool                   // use colors for diagnostics
	readline    *readline.Instance
	editor      lineEditor
	stdout      io.Writer
	stderr      io.Writer
	toolname    string
	version     string
	editmode    string
	lineno      int // number of lines read, shared with diagnostics
}

// lineEditor is the part of the line editor administrative commands change.
type lineEditor interface {
	SetVimMode(bool)
	SetPrompt(string)
}

// NewBaseREPL create a new REPL base object intialized for an interpreter tool
// and a given version. The commands of the language are offered for tab
// completion, in addition to the administrative commands.
func NewBaseREPL(toolname, version string) *BaseREPL {
	rl := newReadline(toolname, version)
	repl := &BaseREPL{
		readline: rl,
		editor:   rl,
		stdout:   rl.Stdout(),
		stderr:   rl.Stderr(),
		toolname: toolname,
		version:  version,
		editmode: "emacs",
	}
	return repl
}

// Create a readline instance.
func newReadline(toolname, version string) *readline.Instance {
	histfile := fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	prompt := fmt.Sprintf(stdprompt, toolname)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        replCompleter(),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// displayCommands prints a help message with available commands
// We support some internal interactive sub-commands (not part of the interpreter).
func (repl *BaseREPL) displayCommands(out io.Writer) {
	fmt.Fprintf(out, welcomeMessage, repl.toolname, repl.version)
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  vars               : list all variables\n")
	io.WriteString(out, "  mode [mode]        : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n")
	io.WriteString(out, "\nAll other lines are executed as instructions of the language:\n\n")
	for _, cmd := range evaluator.Commands() {
		fmt.Fprintf(out, "  %s\n", cmd.Usage)
	}
}

// replCompleter creates a completer-tree for administrative commands and
// the commands of the language.
func replCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("vars"),
		readline.PcItem("mode",
			readline.PcItem("vi"),
			readline.PcItem("emacs"),
		),
		readline.PcItem("setprompt"),
	}
	for _, cmd := range evaluator.Commands() {
		items = append(items, readline.PcItem(cmd.Name))
	}
	return readline.NewPrefixCompleter(items...)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.stdout, repl.stderr
}

// Prompt enters a REPL and executes lines until the user says bye or
// input ends.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	fmt.Fprintf(repl.stderr, welcomeMessage, repl.toolname, repl.version)
	if !strings.HasSuffix(welcomeMessage, "\n") {
		repl.stderr.Write([]byte{'\n'})
	}
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if doExit := repl.executeCommand(line); doExit {
			break
		}
	}
	if exitOnBye {
		lablang.Exit(0)
	}
}

// executeCommand tokenizes a line of input and dispatches it either to an
// administrative command or to the interpreter. Every line counts, so
// diagnostics refer to the same line numbers for tokenizing and execution.
// If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(text string) bool {
	repl.lineno++
	line, err := grammar.TokenizeLine(text, repl.lineno)
	if err != nil {
		repl.report(err)
		return false
	}
	args := line.Args()
	switch line.Command() {
	case "":
		// do nothing
	case "help":
		repl.displayCommands(repl.stderr)
		if repl.Helper != nil {
			repl.Helper(repl.stderr)
		}
	case "bye":
		io.WriteString(repl.stderr, "> goodbye!\n")
		return true
	case "vars":
		repl.writeVariables(repl.stdout)
	case "mode":
		repl.setMode(args)
	case "setprompt":
		prmpt := fmt.Sprintf(stdprompt, repl.toolname)
		if len(args) > 0 {
			prmpt = lablang.StringPayload(strings.Join(args, " ")) + " "
		}
		repl.editor.SetPrompt(prmpt)
	case "label":
		repl.report(lablang.NewError(lablang.LabelUsage, "Labels cannot be declared interactively.").
			At(repl.lineno, line.String()).
			WithHelp("Put labels into a source file and load it with `lablang -i <file>`"))
	default:
		trace().Debugf("call interpreter on: '%s'", line)
		repl.interpret(line)
	}
	return false // do not exit
}

func (repl *BaseREPL) setMode(args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "vi", "emacs":
			repl.editor.SetVimMode(args[0] == "vi")
			repl.editmode = args[0]
			return
		}
	}
	fmt.Fprintf(repl.stderr, "> current input mode: %s\n", repl.editmode)
}

// interpret calls the interpreter, sending a line of tokens. An interrupt
// ends the current line only.
func (repl *BaseREPL) interpret(line grammar.Line) {
	if repl.Interpreter == nil {
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := repl.Interpreter.Exec(ctx, repl.lineno, line); err != nil {
		repl.report(err)
	}
}

// report prints a diagnostic for an error and continues.
func (repl *BaseREPL) report(err error) {
	trace().Debugf("REPL line %d: %v", repl.lineno, err)
	lablang.WriteDiagnostic(repl.stdout, err, repl.Colored)
}

// writeVariables prints a table of all variables with their raw values and
// types.
func (repl *BaseREPL) writeVariables(w io.Writer) {
	if repl.Interpreter == nil {
		return
	}
	store := repl.Interpreter.Store()
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Variable", "Value", "Type"})
	for _, name := range store.Names() {
		v, _ := store.Get(name)
		t.AppendRow(table.Row{name, v, lablang.Classify(v)})
	}
	t.Render()
	fmt.Fprintf(w, "%d variable(s)\n", store.Len())
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
