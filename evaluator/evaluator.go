package evaluator

import (
	"errors"
	"io"
	"os"

	"github.com/npillmayer/lablang"
	"github.com/npillmayer/lablang/grammar"
	"github.com/npillmayer/lablang/variables"
)

// Evaluator is the runtime environment commands operate in: the variable
// store, the output channel and the source context of the instruction
// currently executing.
type Evaluator struct {
	Store  *variables.Store // global variables
	out    io.Writer        // output of print commands
	legacy bool             // resolve operands the way early versions did
	lineno int              // source line of current instruction
	code   string           // text of current instruction
}

// NewEvaluator creates an evaluating runtime environment with an empty
// variable store, printing to stdout.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Store: variables.NewStore(),
		out:   os.Stdout,
	}
}

// setLine remembers the instruction about to be executed, for diagnostics.
func (ev *Evaluator) setLine(instr grammar.Instruction) {
	ev.lineno = instr.LineNo
	ev.code = instr.Tokens.String()
}

// errorf creates an error located at the current instruction.
func (ev *Evaluator) errorf(kind lablang.ErrorKind, format string, args ...interface{}) *lablang.Error {
	return lablang.NewError(kind, format, args...).At(ev.lineno, ev.code)
}

// located adds the current source context to errors which have none.
func (ev *Evaluator) located(err error) error {
	var e *lablang.Error
	if errors.As(err, &e) && e.LineNo == 0 && e.Code == "" {
		e.At(ev.lineno, ev.code)
	}
	return err
}

// --- Operands --------------------------------------------------------------

// operand returns the value of an argument token. Identifiers are resolved
// as variables, string literals are unquoted, everything else is taken
// literally.
func (ev *Evaluator) operand(token string) (string, error) {
	if lablang.Classify(token) == lablang.IdentifierType {
		v, _, err := ev.Store.Resolve(token)
		if err != nil {
			return "", ev.located(err)
		}
		return v, nil
	}
	return lablang.StringPayload(token), nil
}

// resolveRaw resolves an identifier as a variable and leaves every other
// token untouched.
func (ev *Evaluator) resolveRaw(token string) (string, error) {
	if lablang.Classify(token) != lablang.IdentifierType {
		return token, nil
	}
	v, _, err := ev.Store.Resolve(token)
	if err != nil {
		return "", ev.located(err)
	}
	return v, nil
}

// operandPair resolves the first two arguments of a comparing command.
//
// In legacy mode the second operand is decided by inspecting the wrong
// argument: test commands resolve the first argument a second time if the
// first argument is an identifier, and cmd_eq does so if the second one is.
// Tokens which are not resolved are used including their quotes.
func (ev *Evaluator) operandPair(args []string, gateOnSecond bool) (string, string, error) {
	if !ev.legacy {
		a, err := ev.operand(args[0])
		if err != nil {
			return "", "", err
		}
		b, err := ev.operand(args[1])
		return a, b, err
	}
	a, err := ev.resolveRaw(args[0])
	if err != nil {
		return "", "", err
	}
	gate := args[0]
	if gateOnSecond {
		gate = args[1]
	}
	if lablang.Classify(gate) != lablang.IdentifierType {
		return a, args[1], nil
	}
	b, _, err := ev.Store.Resolve(args[0]) // even if args[0] is no identifier
	if err != nil {
		return "", "", ev.located(err)
	}
	return a, b, nil
}
