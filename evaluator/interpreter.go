package evaluator

import (
	"context"
	"io"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/lablang"
	"github.com/npillmayer/lablang/grammar"
	"github.com/npillmayer/lablang/variables"
)

// DefaultMaxDepth is the default limit for nested label calls.
const DefaultMaxDepth = 4096

// ReplLabel is the label context of instructions executed interactively.
const ReplLabel = "<repl>"

// Interpreter interprets lablang programs.
type Interpreter struct {
	prog      *grammar.Program
	evaluator *Evaluator             // runtime environment
	stack     *linkedliststack.Stack // control stack of *frame
	maxDepth  int
}

// frame is an entry of the control stack: a label being executed and the
// index of its next instruction.
type frame struct {
	label *grammar.Label
	pc    int
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithOutput redirects the output of print commands.
func WithOutput(w io.Writer) Option {
	return func(intp *Interpreter) {
		intp.evaluator.out = w
	}
}

// WithStore lets the interpreter work on an existing variable store.
func WithStore(s *variables.Store) Option {
	return func(intp *Interpreter) {
		intp.evaluator.Store = s
	}
}

// WithMaxDepth sets the limit for nested label calls. Values < 1 select
// DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(intp *Interpreter) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		intp.maxDepth = depth
	}
}

// WithLegacyOperands switches on the operand resolution of early versions,
// where the second operand of comparisons is decided by the wrong argument.
func WithLegacyOperands(legacy bool) Option {
	return func(intp *Interpreter) {
		intp.evaluator.legacy = legacy
	}
}

// NewInterpreter creates a new interpreter for a program.
func NewInterpreter(prog *grammar.Program, opts ...Option) *Interpreter {
	if prog == nil {
		prog = grammar.NewProgram()
	}
	intp := &Interpreter{
		prog:      prog,
		evaluator: NewEvaluator(),
		stack:     linkedliststack.New(),
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(intp)
	}
	return intp
}

// Store returns the global variables of the interpreter.
func (intp *Interpreter) Store() *variables.Store {
	return intp.evaluator.Store
}

// Program returns the program the interpreter executes.
func (intp *Interpreter) Program() *grammar.Program {
	return intp.prog
}

// Run executes the program, starting at label `.ENTRY`. It returns when
// `.ENTRY` and all labels called from it have completed, or with the first
// error encountered.
func (intp *Interpreter) Run(ctx context.Context) error {
	intp.evaluator.Store.Set(variables.Temp, "")
	entry := intp.prog.Label(grammar.EntryLabel)
	if entry == nil {
		return lablang.NewError(lablang.MissingEntry, "Label `.ENTRY` does not exist.").
			WithHelp("Add a label named `.ENTRY` using `label .ENTRY`")
	}
	T().Infof("starting program at %s", grammar.EntryLabel)
	intp.stack.Clear()
	if err := intp.call(entry); err != nil {
		return err
	}
	return intp.loop(ctx)
}

// Exec executes a single line of tokens outside of any label, as if it were
// the only instruction of a label `<repl>`. lineno is the number of the
// line in the interactive session, for diagnostics. Labels called from it
// run to completion before Exec returns.
func (intp *Interpreter) Exec(ctx context.Context, lineno int, line grammar.Line) error {
	if len(line) == 0 {
		return nil
	}
	if !intp.evaluator.Store.Has(variables.Temp) {
		intp.evaluator.Store.Set(variables.Temp, "")
	}
	label := &grammar.Label{
		Name: ReplLabel,
		Body: []grammar.Instruction{{LineNo: lineno, Tokens: line}},
	}
	intp.stack.Clear()
	if err := intp.call(label); err != nil {
		return err
	}
	return intp.loop(ctx)
}

// call pushes a frame for a label onto the control stack.
func (intp *Interpreter) call(label *grammar.Label) error {
	if intp.stack.Size() >= intp.maxDepth {
		T().P("label", label.Name).Errorf("control stack exhausted at depth %d", intp.stack.Size())
		return intp.evaluator.errorf(lablang.StackExhausted,
			"Control stack exhausted calling label `%s` (depth %d).", label.Name, intp.stack.Size()).
			WithNote("Jumps are calls: every jmp returns to the line after it, " +
				"so a label jumping to itself never ends")
	}
	intp.stack.Push(&frame{label: label})
	T().P("label", label.Name).Debugf("call, depth now %d", intp.stack.Size())
	return nil
}

// loop is the fetch-decode-execute cycle. It runs until the control stack
// is empty.
func (intp *Interpreter) loop(ctx context.Context) error {
	for !intp.stack.Empty() {
		if err := ctx.Err(); err != nil {
			intp.stack.Clear()
			return intp.evaluator.errorf(lablang.Interrupted, "Execution interrupted.").
				WithReason(err.Error())
		}
		top, _ := intp.stack.Peek()
		f := top.(*frame)
		if f.pc >= len(f.label.Body) { // label completed => return to caller
			intp.stack.Pop()
			T().P("label", f.label.Name).Debugf("return")
			continue
		}
		instr := f.label.Body[f.pc]
		f.pc++
		intp.evaluator.setLine(instr)
		if err := intp.execute(instr.Tokens.Command(), instr.Tokens.Args(), f.label.Name); err != nil {
			intp.stack.Clear()
			return err
		}
	}
	return nil
}

// Depth returns the current depth of the control stack.
func (intp *Interpreter) Depth() int {
	return intp.stack.Size()
}
