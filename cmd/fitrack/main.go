package main

import (
	"fmt"
	"os"
)

const usageText = `fitrack is a terminal workout tracker.

Usage:
  fitrack <command> [flags]

Commands:
  ui       run the terminal UI (default)
  plans    list workout plans
  show     print one plan and its exercises
  config   print configuration (effective or defaults)
  help     show help

Flags:
  -h, --help   show help

Examples:
  fitrack
  fitrack plans --catalog ~/plans.yaml
  fitrack show 0 --format yaml
  fitrack config --format toml --defaults
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"ui"}
	}

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
