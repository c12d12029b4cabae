package cmd

import (
	"net"
	"time"
)

// probeTimeout is the fixed connectivity-probe deadline. There is no retry:
// a single failed dial is immediately fatal.
const probeTimeout = 2 * time.Second

// probeArray checks that the array's REST port accepts TCP connections. It
// runs before the auth request and again before every command as a cheap
// fail-fast guard against an array that has gone unreachable mid-run.
func probeArray(host, port string, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), timeout)
	if err != nil {
		return &connectivityError{host: host, port: port, err: err}
	}
	_ = conn.Close()
	return nil
}
