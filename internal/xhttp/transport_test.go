package xhttp

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

type recordingTransport struct {
	req *http.Request
}

func (r *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r.req = req
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("{}")),
	}, nil
}

func TestRoundTripSetsClientHeaders(t *testing.T) {
	t.Parallel()

	base := &recordingTransport{}
	transport := &gouraTransport{base: base}

	req, err := http.NewRequest(http.MethodGet, "https://api.ouraring.com/v2/usercollection/personal_info", nil)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}

	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}

	if got := base.req.Header.Get("User-Agent"); !strings.HasPrefix(got, "goura/") {
		t.Errorf("User-Agent = %q, want goura/ prefix", got)
	}
	if got := base.req.Header.Get("X-Client-Version"); got == "" {
		t.Error("X-Client-Version header not set")
	}
}

func TestNewTransportInsecureTLS(t *testing.T) {
	t.Parallel()

	transport, ok := NewTransport(WithInsecureTLS()).(*gouraTransport)
	if !ok {
		t.Fatal("NewTransport() did not return a *gouraTransport")
	}

	base, ok := transport.base.(*http.Transport)
	if !ok {
		t.Fatal("insecure transport base is not a *http.Transport")
	}
	if base.TLSClientConfig == nil || !base.TLSClientConfig.InsecureSkipVerify {
		t.Error("InsecureSkipVerify not set on TLS config")
	}
}

func TestNewTransportDefaultKeepsVerification(t *testing.T) {
	t.Parallel()

	transport, ok := NewTransport().(*gouraTransport)
	if !ok {
		t.Fatal("NewTransport() did not return a *gouraTransport")
	}
	if transport.base != http.DefaultTransport {
		t.Error("default transport base is not http.DefaultTransport")
	}
}
