package cmd

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// apiPort is the fixed Spectrum Virtualize REST port.
const apiPort = "7443"

// arrayClient owns the HTTP surface to one array: the base URL, the
// TLS-permissive transport, and the run logger. It is created once per run
// and shared by authentication and command execution.
//
// Certificate validation is disabled: these arrays ship self-signed
// certificates and the accepted trade-off in the target environment is to
// talk to them anyway. Re-enabling verification requires re-evaluating that
// threat model, not just flipping the flag.
type arrayClient struct {
	host    string
	port    string
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func newArrayClient(host string, logger *slog.Logger) *arrayClient {
	return &arrayClient{
		host:    host,
		port:    apiPort,
		baseURL: fmt.Sprintf("https://%s:%s/rest/", host, apiPort),
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		log: logger,
	}
}

// post sends a POST to baseURL+path with the given headers and returns the
// response. Exactly one attempt, ever.
func (c *arrayClient) post(path string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.http.Do(req)
}
