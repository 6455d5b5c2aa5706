package oura

import (
	"context"

	"github.com/garrettladley/goura/internal/xslog"
)

const ringConfigurationEndpoint = "ring_configuration"

// RingConfiguration fetches a single ring configuration document.
func (c *Client) RingConfiguration(ctx context.Context, documentID string) (*RingConfiguration, error) {
	if documentID == "" {
		err := &ArgumentError{Message: "document id must not be empty"}
		c.logger.ErrorContext(ctx, "rejecting fetch",
			xslog.Resource(ringConfigurationEndpoint), xslog.Error(err))
		return nil, err
	}

	result, err := c.Get(ctx, ringConfigurationEndpoint+"/"+documentID, nil)
	if err != nil {
		return nil, err
	}

	var ring RingConfiguration
	if err := decodeStrict(result.Data, &ring); err != nil {
		c.logger.ErrorContext(ctx, "decoding response",
			xslog.Resource(ringConfigurationEndpoint), xslog.Error(err))
		return nil, err
	}
	return &ring, nil
}

// RingConfigurations fetches all ring configuration documents for the
// authenticated user.
func (c *Client) RingConfigurations(ctx context.Context) (*PaginatedResponse[RingConfiguration], error) {
	result, err := c.Get(ctx, ringConfigurationEndpoint, nil)
	if err != nil {
		return nil, err
	}

	var page PaginatedResponse[RingConfiguration]
	if err := decodeStrict(result.Data, &page); err != nil {
		c.logger.ErrorContext(ctx, "decoding response",
			xslog.Resource(ringConfigurationEndpoint), xslog.Error(err))
		return nil, err
	}
	for i := range page.Data {
		if err := validateFields(&page.Data[i]); err != nil {
			c.logger.ErrorContext(ctx, "decoding response",
				xslog.Resource(ringConfigurationEndpoint), xslog.Error(err))
			return nil, err
		}
	}
	return &page, nil
}
