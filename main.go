package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-core/internal/cmd"
)

// main - is the entry point of the application. Configuration and logging are set up by the root command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	root := cmd.Root()
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}
