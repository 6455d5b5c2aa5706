package oura

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/garrettladley/goura/internal/xslog"
	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Result is the outcome of one completed request: the HTTP status code,
// the reason phrase, and the raw JSON payload. The payload is only
// present when it decoded as valid JSON.
type Result struct {
	StatusCode int
	Message    string
	Data       go_json.RawMessage
}

// Get issues a GET against a usercollection endpoint and returns the
// classified result.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*Result, error) {
	return c.call(ctx, http.MethodGet, endpoint, params, nil)
}

// Post issues a POST against a usercollection endpoint. A non-nil body is
// JSON-encoded.
func (c *Client) Post(ctx context.Context, endpoint string, params url.Values, body any) (*Result, error) {
	return c.call(ctx, http.MethodPost, endpoint, params, body)
}

func (c *Client) call(ctx context.Context, method, endpoint string, query url.Values, body any) (*Result, error) {
	if endpoint == "" {
		err := &ArgumentError{Message: "endpoint must not be empty"}
		c.logger.ErrorContext(ctx, "rejecting request", xslog.Method(method), xslog.Error(err))
		return nil, err
	}
	return c.send(ctx, method, c.baseURL+"/"+endpoint, query, body)
}

func (c *Client) send(ctx context.Context, method, rawURL string, query url.Values, body any) (*Result, error) {
	logger := c.logger.With(xslog.RequestID(uuid.NewString()), xslog.Method(method), xslog.URL(rawURL))

	if method != http.MethodGet && method != http.MethodPost {
		err := &ArgumentError{Message: "unsupported method " + strconv.Quote(method)}
		logger.ErrorContext(ctx, "rejecting request", xslog.Error(err))
		return nil, err
	}
	if rawURL == "" {
		err := &ArgumentError{Message: "url must not be empty"}
		logger.ErrorContext(ctx, "rejecting request", xslog.Error(err))
		return nil, err
	}

	u := rawURL
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := go_json.Marshal(body)
		if err != nil {
			argErr := &ArgumentError{Message: "encoding request body", Cause: err}
			logger.ErrorContext(ctx, "rejecting request", xslog.Error(argErr))
			return nil, argErr
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		argErr := &ArgumentError{Message: "creating request", Cause: err}
		logger.ErrorContext(ctx, "rejecting request", xslog.Error(argErr))
		return nil, argErr
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.DebugContext(ctx, "sending request", xslog.Query(query))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		reqErr := &RequestError{Cause: err}
		logger.ErrorContext(ctx, "request failed", xslog.Query(query), xslog.Error(reqErr))
		return nil, reqErr
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		reqErr := &RequestError{Cause: err}
		logger.ErrorContext(ctx, "reading response", xslog.Query(query), xslog.Error(reqErr))
		return nil, reqErr
	}

	if !go_json.Valid(raw) {
		decErr := &DecodeError{Cause: errInvalidJSON}
		logger.ErrorContext(ctx, "request completed",
			xslog.Success(false), xslog.HTTPStatus(resp.StatusCode), xslog.Error(decErr))
		return nil, decErr
	}

	reason := statusReason(resp)
	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	if !ok {
		apiErr := &APIError{StatusCode: resp.StatusCode, Reason: reason}
		logger.ErrorContext(ctx, "request completed",
			xslog.Success(false), xslog.HTTPStatus(resp.StatusCode), xslog.Reason(reason))
		return nil, apiErr
	}

	logger.DebugContext(ctx, "request completed",
		xslog.Success(true), xslog.HTTPStatus(resp.StatusCode), xslog.Reason(reason),
		xslog.Duration(time.Since(start)))

	return &Result{
		StatusCode: resp.StatusCode,
		Message:    reason,
		Data:       raw,
	}, nil
}

// statusReason extracts the reason phrase from a response status line,
// falling back to the standard text for the code.
func statusReason(resp *http.Response) string {
	if after, found := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); found {
		return after
	}
	if resp.Status != "" {
		return resp.Status
	}
	return http.StatusText(resp.StatusCode)
}
