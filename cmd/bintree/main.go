// Package main provides the entry point for the bintree demonstration driver.
package main

import (
	"fmt"
	"os"

	"github.com/gotlibsh/trees/cmd/bintree/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
