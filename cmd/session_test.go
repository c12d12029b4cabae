package cmd

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// mockArray serves the auth endpoint and a fixed payload per command path.
func mockArray(t *testing.T, payloads map[string]string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path == "/rest/auth" {
			if r.Header.Get("X-Auth-Username") == "" || r.Header.Get("X-Auth-Password") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"token":"tok-123"}`))
			return
		}
		if r.Header.Get("X-Auth-Token") != "tok-123" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		payload, ok := payloads[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestAuthenticate_TokenAndRole(t *testing.T) {
	srv, _ := mockArray(t, map[string]string{
		"/rest/lscurrentuser": `[{"name":"password_reset_enabled","value":"yes"},{"role":"CopyOperator"}]`,
	})
	c := newTestClient(t, srv)

	sess, err := authenticate(c, "monitor", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-123", sess.Token)
	require.Equal(t, "CopyOperator", sess.Role)
	require.Equal(t, c.host, sess.Host)
	require.WithinDuration(t, time.Now(), sess.Established, 5*time.Second)
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv)

	_, err := authenticate(c, "monitor", "wrong")
	var authNErr *authError
	require.ErrorAs(t, err, &authNErr)
}

// Any non-success auth status is the same fatal auth failure; no distinction
// between bad password and server error.
func TestAuthenticate_ServerErrorIsAuthError(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv)

	_, err := authenticate(c, "monitor", "pw")
	var authNErr *authError
	require.ErrorAs(t, err, &authNErr)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv)

	_, err := authenticate(c, "monitor", "pw")
	var authNErr *authError
	require.ErrorAs(t, err, &authNErr)
}

func TestAuthenticate_NoRoleIsAuthError(t *testing.T) {
	srv, _ := mockArray(t, map[string]string{
		"/rest/lscurrentuser": `[{"name":"password_reset_enabled","value":"yes"}]`,
	})
	c := newTestClient(t, srv)

	_, err := authenticate(c, "monitor", "pw")
	var authNErr *authError
	require.ErrorAs(t, err, &authNErr)
	require.Contains(t, err.Error(), "no role")
}

// A failed probe is fatal before any auth request is sent.
func TestAuthenticate_ProbeFailureSendsNothing(t *testing.T) {
	srv, hits := mockArray(t, nil)
	c := newTestClient(t, srv)

	origProbe := probeFunc
	t.Cleanup(func() { probeFunc = origProbe })
	probeFunc = func(host, port string, timeout time.Duration) error {
		return &connectivityError{host: host, port: port}
	}

	_, err := authenticate(c, "monitor", "pw")
	var connErr *connectivityError
	require.ErrorAs(t, err, &connErr)
	require.Equal(t, int64(0), hits.Load())
}
