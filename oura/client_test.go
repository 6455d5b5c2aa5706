package oura

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPersonalInfo(t *testing.T) {
	t.Parallel()

	stub := &stubTransport{
		status: http.StatusOK,
		body:   `{"id":"u1","age":30,"weight":70.5,"height":1.8,"biological_sex":"male","email":"a@b.com"}`,
	}
	client := New("abc123", WithTransport(stub))

	info, err := client.PersonalInfo(context.Background())
	if err != nil {
		t.Fatalf("PersonalInfo() error = %v", err)
	}

	want := &PersonalInfo{
		ID:            "u1",
		Age:           30,
		Weight:        70.5,
		Height:        1.8,
		BiologicalSex: "male",
		Email:         "a@b.com",
	}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("PersonalInfo mismatch (-want +got):\n%s", diff)
	}

	if got := stub.lastRequest(t).Header.Get("Authorization"); got != "Bearer abc123" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer abc123")
	}
}

func TestPersonalInfoUnauthorized(t *testing.T) {
	t.Parallel()

	stub := &stubTransport{status: http.StatusUnauthorized, body: `{"detail":"invalid token"}`}
	client := New("abc123", WithTransport(stub))

	_, err := client.PersonalInfo(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Reason != "Unauthorized" {
		t.Errorf("Reason = %q, want Unauthorized", apiErr.Reason)
	}
}

func TestRingConfiguration(t *testing.T) {
	t.Parallel()

	const body = `{"id":"ring-1","color":"stealth_black","design":"heritage","firmware_version":"2.9.24","hardware_type":"gen3","set_up_at":"2024-06-01T12:00:00+00:00","size":9}`

	stub := &stubTransport{status: http.StatusOK, body: body}
	client := newTestClient(stub)

	ring, err := client.RingConfiguration(context.Background(), "ring-1")
	if err != nil {
		t.Fatalf("RingConfiguration() error = %v", err)
	}
	if ring.ID != "ring-1" {
		t.Errorf("ID = %q, want ring-1", ring.ID)
	}

	req := stub.lastRequest(t)
	if want := "/v2/usercollection/ring_configuration/ring-1"; req.URL.Path != want {
		t.Errorf("path = %q, want %q", req.URL.Path, want)
	}
}

func TestRingConfigurationEmptyID(t *testing.T) {
	t.Parallel()

	stub := &stubTransport{status: http.StatusOK, body: `{}`}
	client := newTestClient(stub)

	_, err := client.RingConfiguration(context.Background(), "")

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error = %v, want *ArgumentError", err)
	}
	if stub.calls != 0 {
		t.Errorf("network calls = %d, want 0", stub.calls)
	}
}

func TestRingConfigurations(t *testing.T) {
	t.Parallel()

	stub := &stubTransport{
		status: http.StatusOK,
		body:   `{"data":[{"id":"ring-1","color":"silver","design":"horizon","firmware_version":"2.9.24","hardware_type":"gen3","set_up_at":null,"size":null}],"next_token":null}`,
	}
	client := newTestClient(stub)

	page, err := client.RingConfigurations(context.Background())
	if err != nil {
		t.Fatalf("RingConfigurations() error = %v", err)
	}
	if len(page.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(page.Data))
	}
	if page.HasMore() {
		t.Error("HasMore() = true, want false with null next_token")
	}
}

func TestRevokeToken(t *testing.T) {
	t.Parallel()

	stub := &stubTransport{status: http.StatusOK, body: ""}
	client := newTestClient(stub)

	if err := client.RevokeToken(context.Background()); err != nil {
		t.Fatalf("RevokeToken() error = %v", err)
	}

	req := stub.lastRequest(t)
	if req.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", req.Method)
	}
	if want := "https://api.ouraring.com/oauth/revoke"; req.URL.String() != want {
		t.Errorf("url = %q, want %q", req.URL.String(), want)
	}
}

func TestRevokeTokenUnauthorized(t *testing.T) {
	t.Parallel()

	stub := &stubTransport{status: http.StatusUnauthorized, body: ""}
	client := newTestClient(stub)

	err := client.RevokeToken(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
}

func TestNewOverridesHostnameAndVersion(t *testing.T) {
	t.Parallel()

	stub := &stubTransport{status: http.StatusOK, body: `{}`}
	client := New("tok", WithTransport(stub), WithHostname("oura.example.com"), WithVersion("v3"))

	if _, err := client.Get(context.Background(), "personal_info", nil); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	req := stub.lastRequest(t)
	if want := "https://oura.example.com/v3/usercollection/personal_info"; req.URL.String() != want {
		t.Errorf("url = %q, want %q", req.URL.String(), want)
	}
}
