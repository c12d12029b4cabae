package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// commandsCmd lists the battery and the local authorization category of each
// command. Purely local; useful for reviewing what a run will attempt.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the command battery and local authorization categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		commands, err := battery()
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		printBattery(stdoutFor(cmd), commands)
		return nil
	},
}
