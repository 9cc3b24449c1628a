package main

import "github.com/urfave/cli/v2"

// FlagVerbose raises the klog verbosity for the duration of a command.
var FlagVerbose = &cli.BoolFlag{
	Name:    "verbose",
	Aliases: []string{"v"},
	Usage:   "enable verbose logging",
}
