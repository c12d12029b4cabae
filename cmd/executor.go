package cmd

import (
	"io"
	"net/http"
)

// runCommand executes a single command over the authenticated session:
// re-probe connectivity, check the local authorization policy, then send
// exactly one authenticated POST. A non-200 response is fatal; the error
// notes when the command matched no known pattern and was attempted
// speculatively.
func runCommand(c *arrayClient, sess *session, name string) (commandResult, error) {
	if err := probeFunc(c.host, c.port, probeTimeout); err != nil {
		return nil, err
	}

	authorized, err := checkAuthorized(name, sess.Role)
	if err != nil {
		c.log.Error("role not authorized", "role", sess.Role, "command", name)
		return nil, err
	}
	if authorized {
		c.log.Debug("role authorized for command", "role", sess.Role, "command", name)
	} else {
		c.log.Debug("cannot match command with any known pattern", "command", name)
	}

	c.log.Debug("sending command", "command", name)
	resp, err := c.post(name, map[string]string{"X-Auth-Token": sess.Token})
	if err != nil {
		return nil, &commandError{command: name, speculative: !authorized}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		c.log.Error("command rejected by array", "command", name, "status", resp.StatusCode)
		return nil, &commandError{command: name, status: resp.StatusCode, speculative: !authorized}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &commandError{command: name, status: resp.StatusCode, speculative: !authorized}
	}
	result, err := decodeRecords(body)
	if err != nil {
		return nil, &commandError{command: name, status: resp.StatusCode, speculative: !authorized}
	}
	c.log.Debug("got HTTP 200 on command", "command", name, "records", len(result))
	return result, nil
}
