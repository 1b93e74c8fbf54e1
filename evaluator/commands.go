package evaluator

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/lablang"
	"github.com/npillmayer/lablang/variables"
)

// Command describes a built-in command of the language.
type Command struct {
	Name    string
	Usage   string // usage string, reported with argument count errors
	Help    string // one-line description
	Args    int    // exact number of arguments, or minimum if AtLeast is set
	AtLeast bool
	AnyArgs bool // accepts any number of arguments
	op      func(intp *Interpreter, args []string, label string) error
}

// commands will be set in init()
var commands map[string]*Command

// commandList keeps the commands in order of presentation.
var commandList []*Command

func init() {
	commandList = []*Command{
		{Name: "jmp", Usage: "jmp <label_name>", Args: 1,
			Help: "Jumps to a label", op: jmp},
		{Name: "var", Usage: "var <variable_name> <variable_value>", Args: 2,
			Help: "Makes a variable (Note: Variables are global and are not limited to a label)", op: setvar},
		{Name: "require", Usage: "require <variable_name>", Args: 1,
			Help: "Makes it necessary for variable <variable_name> to exist", op: require},
		{Name: "test_lt_eq", Usage: "test_lt_eq <number1> <number2>", Args: 2,
			Help: "Tests whether <number1> is less than or equal to <number2>",
			op: numericTest("test_lt_eq", func(a, b float32) bool { return a <= b })},
		{Name: "test_gt_eq", Usage: "test_gt_eq <number1> <number2>", Args: 2,
			Help: "Tests whether <number1> is greater than or equal to <number2>",
			op: numericTest("test_gt_eq", func(a, b float32) bool { return a >= b })},
		{Name: "test_lt", Usage: "test_lt <number1> <number2>", Args: 2,
			Help: "Tests whether <number1> is less than <number2>",
			op: numericTest("test_lt", func(a, b float32) bool { return a < b })},
		{Name: "test_gt", Usage: "test_gt <number1> <number2>", Args: 2,
			Help: "Tests whether <number1> is greater than <number2>",
			op: numericTest("test_gt", func(a, b float32) bool { return a > b })},
		{Name: "test_eq", Usage: "test_eq <value1> <value2>", Args: 2,
			Help: "Tests whether <value1> is equal to <value2>", op: testEq},
		{Name: "cmd_eq", Usage: "cmd_eq <value1> <value2> <command> <args>...", Args: 4, AtLeast: true,
			Help: "Executes <command> with arguments <args> if <value1> is equal to <value2>", op: cmdEq},
		{Name: "print", Usage: "print <value>", Args: 1,
			Help: "Prints a value, followed by a newline", op: printValue},
		{Name: "cmt", Usage: "cmt <anything>...", AnyArgs: true,
			Help: "A comment. Ignored by the interpreter", op: nop},
	}
	commands = make(map[string]*Command, len(commandList))
	for _, cmd := range commandList {
		commands[cmd.Name] = cmd
	}
}

// Commands returns all built-in commands, for help displays.
func Commands() []*Command {
	return commandList
}

// execute dispatches a command. label is the name of the label the
// instruction belongs to.
func (intp *Interpreter) execute(command string, args []string, label string) error {
	cmd, ok := commands[command]
	if !ok {
		T().P("cmd", command).Errorf("unknown command")
		return intp.evaluator.errorf(lablang.UnknownCommand, "Unknown command `%s`", command)
	}
	if err := cmd.checkArgs(intp.evaluator, len(args)); err != nil {
		return err
	}
	T().P("cmd", command).Debugf("%v", args)
	return cmd.op(intp, args, label)
}

func (cmd *Command) checkArgs(ev *Evaluator, n int) error {
	switch {
	case cmd.AnyArgs:
		return nil
	case cmd.AtLeast && n < cmd.Args:
		return ev.errorf(lablang.Usage, "Expected at least %d arguments, found %d", cmd.Args, n).
			WithUsage(cmd.Usage)
	case !cmd.AtLeast && n != cmd.Args:
		noun := "arguments"
		if cmd.Args == 1 {
			noun = "argument"
		}
		return ev.errorf(lablang.Usage, "Expected exactly %d %s, found %d", cmd.Args, noun, n).
			WithUsage(cmd.Usage)
	}
	return nil
}

// --- Commands --------------------------------------------------------------

func nop(intp *Interpreter, args []string, label string) error {
	return nil
}

func setvar(intp *Interpreter, args []string, label string) error {
	intp.evaluator.Store.Set(args[0], args[1])
	return nil
}

func jmp(intp *Interpreter, args []string, label string) error {
	target := intp.prog.Label(args[0])
	if target == nil {
		return intp.evaluator.errorf(lablang.UndefinedLabel, "Label `%s` does not exist.", args[0]).
			WithNote("The label needs to exist")
	}
	return intp.call(target)
}

func require(intp *Interpreter, args []string, label string) error {
	if !intp.evaluator.Store.Has(args[0]) {
		return intp.evaluator.errorf(lablang.RequiredVariable,
			"Variable `%s` does not exist, but is required in label `%s`", args[0], label)
	}
	return nil
}

// numericTest creates a test command comparing two numbers.
func numericTest(name string, cmp func(a, b float32) bool) func(*Interpreter, []string, string) error {
	return func(intp *Interpreter, args []string, label string) error {
		ev := intp.evaluator
		a, b, err := ev.operandPair(args, false)
		if err != nil {
			return err
		}
		usage := commands[name].Usage
		x, err := ev.number(a, "first", usage)
		if err != nil {
			return err
		}
		y, err := ev.number(b, "second", usage)
		if err != nil {
			return err
		}
		ev.Store.Set(variables.Temp, truth(cmp(x, y)))
		return nil
	}
}

// number converts an operand to a single precision float. The operand has
// to be of type Number.
func (ev *Evaluator) number(v string, which string, usage string) (float32, error) {
	if t := lablang.Classify(v); t != lablang.NumberType {
		return 0, ev.errorf(lablang.NotANumber,
			"Expected the %s value to be a Number, not a %s", which, t).WithUsage(usage)
	}
	// Number syntax is guaranteed; out of range values come back as ±Inf
	f, _ := strconv.ParseFloat(v, 32)
	return float32(f), nil
}

func testEq(intp *Interpreter, args []string, label string) error {
	a, b, err := intp.evaluator.operandPair(args, false)
	if err != nil {
		return err
	}
	intp.evaluator.Store.Set(variables.Temp, truth(a == b))
	return nil
}

func cmdEq(intp *Interpreter, args []string, label string) error {
	a, b, err := intp.evaluator.operandPair(args, true)
	if err != nil {
		return err
	}
	if a != b {
		return nil
	}
	return intp.execute(args[2], args[3:], label)
}

func printValue(intp *Interpreter, args []string, label string) error {
	v, err := intp.evaluator.operand(args[0])
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(intp.evaluator.out, v); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

func truth(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
