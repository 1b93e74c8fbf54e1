// Package cli implements the lablang command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lablang"
	"github.com/npillmayer/lablang/evaluator"
	"github.com/npillmayer/lablang/grammar"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lablang [flags] <source_code_file>",
	Short: "An interpreter for a small label-based scripting language",
	Long: `Welcome to lablang V0.1 (experimental)

lablang interprets programs made of labeled blocks of instructions.
Execution starts at label .ENTRY; jmp calls another label and returns
to the line after the jump.

lablang is able to run a program in batch-mode or to prompt for
instructions in a terminal REPL.

`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	Run:          runLablangCmd,
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands of the language",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeCommandReference(cmd.OutOrStdout())
	},
}

var labelsCmd = &cobra.Command{
	Use:   "labels <source_code_file>",
	Short: "List the labels of a program",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if code := listLabels(args[0], cmd.OutOrStdout(), settingsFromConfig()); code != 0 {
			lablang.Exit(code)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by lablang.main().
func Execute() {
	rootCmd.AddCommand(commandsCmd, labelsCmd)
	if rootCmd.Execute() != nil {
		lablang.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	addFlags(rootCmd)
}

// addFlags defines the persistent flags which will be global for the application.
func addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolP("interactive", "i", false, "Prompt for instructions after loading")
	flags.String("logfile", "stderr", "Trace destination: a file name, a path or a URL")
	flags.Int("max-depth", evaluator.DefaultMaxDepth, "Limit for nested label calls")
	flags.Bool("legacy-operands", false, "Resolve comparison operands the way early versions did")
	flags.Bool("dump-vars", false, "Dump variables as YAML to stderr after a run")
	flags.Bool("color", false, "Use colors for diagnostics")
}

// settings are the configuration values a program run depends on.
type settings struct {
	interactive bool
	maxDepth    int
	legacy      bool
	dumpVars    bool
	colored     bool
}

func settingsFromConfig() settings {
	k := lablang.Configuration
	if k == nil {
		return settings{maxDepth: evaluator.DefaultMaxDepth}
	}
	return settings{
		interactive: k.Bool("interactive"),
		maxDepth:    k.Int("max-depth"),
		legacy:      k.Bool("legacy-operands"),
		dumpVars:    k.Bool("dump-vars"),
		colored:     k.Bool("color"),
	}
}

func (s settings) options(out io.Writer) []evaluator.Option {
	return []evaluator.Option{
		evaluator.WithOutput(out),
		evaluator.WithMaxDepth(s.maxDepth),
		evaluator.WithLegacyOperands(s.legacy),
	}
}

func runLablangCmd(cmd *cobra.Command, args []string) {
	s := settingsFromConfig()
	if len(args) == 0 && !s.interactive {
		writeUsage(cmd.OutOrStdout())
		return
	}
	if s.interactive {
		tracer().Infof("lablang REPL called")
		if code := runInteractive(lablang.SignalContext, args, s); code != 0 {
			lablang.Exit(code)
		}
		return
	}
	tracer().Infof("lablang interpreter called for %s", args[0])
	if code := runFile(lablang.SignalContext, args[0], os.Stdout, os.Stderr, s); code != 0 {
		lablang.Exit(code)
	}
}

// writeUsage prints a short usage hint for calls without a source file.
func writeUsage(w io.Writer) {
	fmt.Fprintln(w, "[Usage] lablang <source_code_file>")
	fmt.Fprintln(w, "[Example] lablang examples/tutorial.ll")
	fmt.Fprintln(w, "[For help regarding the language] lablang commands")
}

// loadFile reads and loads a program. Errors are reported as diagnostics
// to w.
func loadFile(path string, w io.Writer, s settings) (*grammar.Program, bool) {
	prog, err := readProgram(path)
	if err != nil {
		lablang.WriteDiagnostic(w, err, s.colored)
		return nil, false
	}
	return prog, true
}

// readProgram reads a source file and loads it. Failing to read the file is
// an error of kind lablang.FileAccess.
func readProgram(path string) (*grammar.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		tracer().Errorf("cannot read %s: %v", path, err)
		return nil, lablang.NewError(lablang.FileAccess, "Could not open file `%s`", path).
			WithReason(err.Error())
	}
	return grammar.LoadSource(string(src))
}

// runFile executes a program file and returns the process exit code.
// Program output and diagnostics go to stdout, the variable dump to stderr.
func runFile(ctx context.Context, path string, stdout, stderr io.Writer, s settings) int {
	prog, ok := loadFile(path, stdout, s)
	if !ok {
		return 1
	}
	intp := evaluator.NewInterpreter(prog, s.options(stdout)...)
	if err := intp.Run(ctx); err != nil {
		tracer().Errorf("%s: %v", path, err)
		lablang.WriteDiagnostic(stdout, err, s.colored)
		return 1
	}
	if s.dumpVars {
		if err := dumpVars(stderr, intp); err != nil {
			tracer().Errorf("cannot dump variables: %v", err)
			return 1
		}
	}
	return 0
}

// dumpVars writes the variables of an interpreter as a YAML mapping.
func dumpVars(w io.Writer, intp *evaluator.Interpreter) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(intp.Store().Snapshot()); err != nil {
		return err
	}
	return enc.Close()
}
