package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "svcheck",
	Short: "Collect a Spectrum Virtualize inventory report over the REST API",
	Long: "Authenticates against a Spectrum Virtualize array, verifies the caller's role against each " +
		"command, runs the inventory battery, and writes every result as one formatted sheet of a " +
		"single Excel report.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateConnectionFlags(); err != nil {
			return err
		}
		return runReport()
	},
}

// validateConnectionFlags checks the flags every network-facing subcommand
// needs.
func validateConnectionFlags() error {
	if cfgArray == "" {
		return errors.New("--array is required (array FQDN or IP)")
	}
	if cfgUser == "" {
		return errors.New("--user is required for authentication")
	}
	if cfgPassword == "" {
		return errors.New("--password is required (or set SVCHECK_PASSWORD)")
	}
	if strings.TrimSpace(cfgUser) == "superuser" {
		// Disallow superuser account usage
		return errSuperUser
	}
	return nil
}
