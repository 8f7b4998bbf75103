package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/invincible-jha/aumai-toolemu/internal/config"
)

// runInitConfig writes an example emulator config file.
func runInitConfig(args []string) int {
	fs := flag.NewFlagSet("init-config", flag.ExitOnError)
	output := fs.String("output", "mocks.yaml", "destination config file")
	force := fs.Bool("force", false, "overwrite if exists")
	_ = fs.Parse(args)

	if err := config.WriteExample(*output, *force); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Printf("Created %s\n", *output)
	return 0
}
