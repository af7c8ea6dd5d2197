// Package main is the entry point for the pretext CLI.
package main

import (
	"os"

	"github.com/jmylchreest/pretext/cmd/pretext/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
