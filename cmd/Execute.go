package cmd

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes are part of the external contract; see exitCodeFor.
const (
	exitPersistence  = 2
	exitCommand      = 3
	exitAuth         = 4
	exitAuthorize    = 5
	exitConnectivity = 6
)

// exitCodeFor maps an error returned by a subcommand to the process exit
// code. Exit-code policy lives here and nowhere else; the pipeline itself
// only returns typed errors.
func exitCodeFor(err error) int {
	var (
		connErr    *connectivityError
		authNErr   *authError
		authZErr   *authorizationError
		cmdErr     *commandError
		persistErr *persistenceError
	)
	switch {
	case errors.As(err, &persistErr):
		return exitPersistence
	case errors.As(err, &cmdErr):
		return exitCommand
	case errors.As(err, &authNErr):
		return exitAuth
	case errors.As(err, &authZErr):
		return exitAuthorize
	case errors.As(err, &connErr):
		return exitConnectivity
	}
	return 1
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errSuperUser) {
			// Superuser account error prints to stdout and exits with code 1
			_, _ = fmt.Fprintln(os.Stdout, err.Error())
			exitFunc(1)
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		exitFunc(exitCodeFor(err))
		return
	}
}
