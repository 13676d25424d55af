// Command tauc drives the Tau compiler's core analysis pipeline over a
// pre-parsed program. See cmd/tauc/cmd for the subcommands.
package main

import (
	"os"

	"github.com/baleg00/tau/cmd/tauc/cmd"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
