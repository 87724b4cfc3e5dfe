package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsplit/internal/cli"
	"tsplit/internal/cli/commands"
	"tsplit/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "tsplit",
		Short: "Split a test suite into time-balanced groups",
		Long: `Split an ordered test suite into groups whose execution time is about the same,
so each group can run on its own CI worker. Record durations with "tsplit record"
to improve the balance of consequent runs.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
