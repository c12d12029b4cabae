package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// verifyCmd is a pre-flight credential check: probe the REST port and
// authenticate, but run no battery and write no report.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Probe the array and validate credentials without collecting a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateConnectionFlags(); err != nil {
			return err
		}
		level := slog.LevelInfo
		if cfgVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		client := newArrayClient(cfgArray, logger)
		sess, err := authenticateFunc(client, cfgUser, cfgPassword)
		if err != nil {
			logger.Error(err.Error())
			return err
		}
		_, _ = fmt.Fprintf(stdoutFor(cmd), "Credentials OK: %s has role %s on %s\n", cfgUser, sess.Role, sess.Host)
		return nil
	},
}

func stdoutFor(cmd *cobra.Command) io.Writer {
	if w := cmd.OutOrStdout(); w != nil {
		return w
	}
	return os.Stdout
}
