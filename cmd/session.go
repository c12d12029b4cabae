package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// session is the authenticated context for one run: the opaque token and the
// role the array reports for the caller. It is created once by authenticate
// and read-only afterwards; there is no explicit logout.
type session struct {
	Token       string
	Role        string
	Host        string
	Established time.Time
}

// authenticate establishes the session: probe the REST port, exchange the
// credentials for a token at the auth endpoint, then discover the caller's
// role with lscurrentuser. Any failure is fatal; no distinction is made
// between bad credentials and a server-side auth failure.
func authenticate(c *arrayClient, username, password string) (*session, error) {
	if err := probeFunc(c.host, c.port, probeTimeout); err != nil {
		return nil, err
	}

	c.log.Debug("getting auth token", "host", c.host)
	resp, err := c.post("auth", map[string]string{
		"X-Auth-Username": username,
		"X-Auth-Password": password,
		"charset":         "utf-8",
	})
	if err != nil {
		return nil, &authError{host: c.host, msg: "auth request failed", err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, &authError{host: c.host, msg: "cannot get auth token with these credentials"}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &authError{host: c.host, msg: "reading auth response", err: err}
	}
	var tok struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, &authError{host: c.host, msg: "decoding auth response", err: err}
	}
	if tok.Token == "" {
		return nil, &authError{host: c.host, msg: "auth response contains no token"}
	}
	c.log.Info("got valid auth token", "host", c.host)

	sess := &session{
		Token:       tok.Token,
		Host:        c.host,
		Established: time.Now(),
	}

	c.log.Debug("querying role", "user", username)
	role, err := discoverRole(c, sess)
	if err != nil {
		return nil, err
	}
	sess.Role = role
	c.log.Debug("got role", "user", username, "role", role)
	return sess, nil
}

// discoverRole runs lscurrentuser through the executor and extracts the
// role field from the returned records.
func discoverRole(c *arrayClient, sess *session) (string, error) {
	result, err := runCommandFunc(c, sess, "lscurrentuser")
	if err != nil {
		return "", &authError{host: c.host, msg: "cannot query current user", err: err}
	}
	for _, rec := range result {
		if v, ok := rec.get("role"); ok {
			if s, ok := v.(string); ok && s != "" {
				return s, nil
			}
		}
	}
	return "", &authError{host: c.host, msg: "lscurrentuser returned no role"}
}
