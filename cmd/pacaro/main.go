// Package main provides the entry point for pacaro.
//
// pacaro is a terminal Kanban board for the pacaro tasks API. Run without
// arguments it opens the board; subcommands script the same operations.
//
// Usage:
//
//	pacaro [command] [flags]
package main

import (
	"os"

	"github.com/riordanpawley/pacaro/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
