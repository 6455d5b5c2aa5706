package xhttp

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/garrettladley/goura/internal/version"
)

type gouraTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*gouraTransport)(nil)

func (t *gouraTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "goura/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

type transportConfig struct {
	insecureSkipVerify bool
}

type TransportOption func(*transportConfig)

// WithInsecureTLS disables server certificate verification.
func WithInsecureTLS() TransportOption {
	return func(cfg *transportConfig) { cfg.insecureSkipVerify = true }
}

// NewTransport returns an http.RoundTripper with standard goura headers.
func NewTransport(opts ...TransportOption) http.RoundTripper {
	var cfg transportConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	base := http.DefaultTransport
	if cfg.insecureSkipVerify {
		insecure := http.DefaultTransport.(*http.Transport).Clone()
		insecure.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via WithInsecureTLS
		base = insecure
	}

	return &gouraTransport{base: base}
}
