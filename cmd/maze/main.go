package main

import (
	"fmt"
	"os"

	"github.com/example/maze/internal/cli"
	"github.com/example/maze/internal/version"
)

func main() {
	rootCmd := cli.GenerateCmd()
	rootCmd.Version = version.String()

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.RunsCmd())
	rootCmd.AddCommand(cli.ReplayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
