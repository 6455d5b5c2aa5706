package oura

import (
	"context"

	"github.com/garrettladley/goura/internal/xslog"
)

// PersonalInfo fetches the authenticated user's personal info.
func (c *Client) PersonalInfo(ctx context.Context) (*PersonalInfo, error) {
	const endpoint = "personal_info"

	result, err := c.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var info PersonalInfo
	if err := decodeStrict(result.Data, &info); err != nil {
		c.logger.ErrorContext(ctx, "decoding response", xslog.Resource(endpoint), xslog.Error(err))
		return nil, err
	}
	return &info, nil
}
