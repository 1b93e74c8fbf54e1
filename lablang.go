/*
Package lablang is a small line-oriented scripting language built around
labels.

A program is a sequence of labeled blocks of instructions. Execution starts
at label `.ENTRY`, and `jmp` calls another label, returning to the line
after the jump once the called label is done:

   label .ENTRY
       var greeting "Hello World"
       jmp .GREET
       print "done"

   label .GREET
       require greeting
       print greeting

The root package holds the value classifier shared by all parts of the
interpreter, the error kinds the engine reports, and the process-global
configuration of the command line tool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lablang

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lablang'.
func tracer() tracing.Trace {
	return tracing.Select("lablang")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
