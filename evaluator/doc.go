/*
Package evaluator executes lablang programs.

The interpreter runs the instructions of a label one after the other. The
first token of an instruction names the command, the remaining tokens are
its arguments. A `jmp` calls another label: the called label runs to its
end, then execution continues after the jump. Calls are kept on an explicit
control stack instead of the Go call stack, so a program jumping in circles
runs into a configurable depth limit rather than crashing the process.

All faults are reported as errors of type *lablang.Error; nothing in this
package terminates the process.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'lablang.evaluator'.
func T() tracing.Trace {
	return tracing.Select("lablang.evaluator")
}
