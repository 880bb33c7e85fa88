// SPDX-License-Identifier: MIT

// Package main provides the entry point for the dyntree CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/malbarbo/fera-sub000/cmd/dyntree/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
