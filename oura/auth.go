package oura

import (
	"context"
	"net/http"

	"github.com/garrettladley/goura/internal/xslog"
)

// RevokeToken revokes the personal access token the client was
// constructed with. The client is unusable afterwards. The revocation
// endpoint lives outside the usercollection base and may return an empty
// body, so the response is classified by status alone.
func (c *Client) RevokeToken(ctx context.Context) error {
	u := "https://" + c.hostname + "/oauth/revoke"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		argErr := &ArgumentError{Message: "creating request", Cause: err}
		c.logger.ErrorContext(ctx, "rejecting request", xslog.URL(u), xslog.Error(argErr))
		return argErr
	}

	c.logger.DebugContext(ctx, "sending request", xslog.Method(http.MethodPost), xslog.URL(u))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		reqErr := &RequestError{Cause: err}
		c.logger.ErrorContext(ctx, "request failed", xslog.URL(u), xslog.Error(reqErr))
		return reqErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Reason: statusReason(resp)}
		c.logger.ErrorContext(ctx, "request completed",
			xslog.Success(false), xslog.HTTPStatus(resp.StatusCode), xslog.Reason(apiErr.Reason))
		return apiErr
	}

	c.logger.DebugContext(ctx, "request completed",
		xslog.Success(true), xslog.HTTPStatus(resp.StatusCode))
	return nil
}
