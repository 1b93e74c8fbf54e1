// Command lablang interprets programs written in lablang, a small
// line-oriented scripting language built around labels.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/lablang"
	"github.com/npillmayer/lablang/lablang/cli"
)

func main() {
	var stop context.CancelFunc
	lablang.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli.Execute()
}
