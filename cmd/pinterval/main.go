// Command pinterval is the CLI front end: a hand-dispatched set of
// subcommands (cfg, analyze, version), grounded on the pack's
// args[0]-table dispatch convention rather than a subcommand framework.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error, please report: %v\n", r)
			os.Exit(2)
		}
	}()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "cfg":
		runCfg(os.Args[2:])
	case "analyze":
		runAnalyze(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Println("pinterval " + version)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`pinterval - parametric interval analysis for the While language

Usage:
  pinterval cfg <source>
  pinterval analyze pinterval <source> [--m INT] [--n INT] [--wdelay N] [--dsteps N] [--init FILE]
  pinterval version`)
}
