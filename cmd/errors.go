package cmd

import "fmt"

// The five fatal error kinds. None is ever retried or downgraded to a
// partial outcome; Execute() alone maps them to process exit codes.

// connectivityError reports that the array's REST port could not be reached.
type connectivityError struct {
	host string
	port string
	err  error
}

func (e *connectivityError) Error() string {
	return fmt.Sprintf("API port %s cannot be reached for %s: %v", e.port, e.host, e.err)
}

func (e *connectivityError) Unwrap() error { return e.err }

// authError reports a failed authentication or role discovery.
type authError struct {
	host string
	msg  string
	err  error
}

func (e *authError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("authentication against %s failed: %s: %v", e.host, e.msg, e.err)
	}
	return fmt.Sprintf("authentication against %s failed: %s", e.host, e.msg)
}

func (e *authError) Unwrap() error { return e.err }

// authorizationError reports a local pre-flight policy denial. It is raised
// before any request is sent.
type authorizationError struct {
	command string
	role    string
}

func (e *authorizationError) Error() string {
	return fmt.Sprintf("role %s is not authorized to run %s", e.role, e.command)
}

// commandError reports a non-success response from the array for a single
// command. speculative marks commands that matched no known pattern and were
// attempted with the server as the final authority.
type commandError struct {
	command     string
	status      int
	speculative bool
}

func (e *commandError) Error() string {
	if e.speculative {
		return fmt.Sprintf("cannot run %s (HTTP %d), likely not a correct command", e.command, e.status)
	}
	return fmt.Sprintf("cannot run %s (HTTP %d)", e.command, e.status)
}

// persistenceError reports a failure to write the report artifact.
type persistenceError struct {
	path string
	err  error
}

func (e *persistenceError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.path, e.err)
}

func (e *persistenceError) Unwrap() error { return e.err }
