// Command toolemu emulates external tool calls for agent testing.
//
// Subcommands:
//
//	serve        start the emulator HTTP server from a config file
//	call         invoke a single emulated tool and print the response
//	init-config  write an example config file
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	_ = godotenv.Load()

	if len(args) == 0 {
		usage()
		return 2
	}

	switch args[0] {
	case "serve":
		return runServe(args[1:])
	case "call":
		return runCall(args[1:])
	case "init-config":
		return runInitConfig(args[1:])
	case "-h", "--help", "help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `toolemu - emulate tool calls for agent testing

Usage:
  toolemu serve -config FILE [-host HOST] [-port PORT]
  toolemu call -tool NAME [-input JSON] [-config FILE] [-status N] [-body JSON]
  toolemu init-config [-output FILE] [-force]
`)
}
