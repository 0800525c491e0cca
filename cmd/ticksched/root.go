// The ticksched command demonstrates the periodic task scheduler with a
// synthetic host loop.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ticksched",
	Short: "ticksched drives a periodic task scheduler with a synthetic host loop.",
	Long: `ticksched drives a periodic task scheduler with a synthetic host loop. ` +
		`The demo subcommand registers a set of owners with periodic tasks, advances ` +
		`the tick counter, and records every dispatch into a SQLite database.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file may set TICKSCHED_MONITOR_PORT.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
