package oura

import (
	"context"
	"net/url"

	"github.com/garrettladley/goura/internal/xslog"
)

// SummaryParams selects what a Summary fetch targets. A non-empty
// NextToken takes precedence unconditionally: the single record behind
// the token is fetched and the dates are ignored. Otherwise StartDate
// and EndDate (ISO-8601, both optional) select a collection window.
type SummaryParams struct {
	StartDate string
	EndDate   string
	NextToken string
}

// PaginatedResponse is a collection of records plus an optional token
// pointing at the next record.
type PaginatedResponse[T any] struct {
	Data      []T     `json:"data"`
	NextToken *string `json:"next_token"`
}

func (p *PaginatedResponse[T]) HasMore() bool {
	return p.NextToken != nil && *p.NextToken != ""
}

// SummaryResult is the tagged outcome of a Summary fetch: exactly one of
// Collection or Datum reports true.
type SummaryResult[T any] struct {
	collection *PaginatedResponse[T]
	datum      *T
}

func (r *SummaryResult[T]) Collection() (*PaginatedResponse[T], bool) {
	return r.collection, r.collection != nil
}

func (r *SummaryResult[T]) Datum() (*T, bool) {
	return r.datum, r.datum != nil
}

// Summary is a date-range-or-token resource. Every daily summary
// endpoint is one instantiation; the branching and validation logic is
// shared across all of them.
type Summary[T any] struct {
	client   *Client
	resource string
}

func newSummary[T any](c *Client, resource string) *Summary[T] {
	return &Summary[T]{client: c, resource: resource}
}

// Fetch runs the summary protocol for params and returns the tagged
// result. A nil params fetches the default window (yesterday..today).
func (s *Summary[T]) Fetch(ctx context.Context, params *SummaryParams) (*SummaryResult[T], error) {
	if params != nil && params.NextToken != "" {
		datum, err := s.Get(ctx, params.NextToken)
		if err != nil {
			return nil, err
		}
		return &SummaryResult[T]{datum: datum}, nil
	}

	var start, end string
	if params != nil {
		start, end = params.StartDate, params.EndDate
	}
	page, err := s.List(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &SummaryResult[T]{collection: page}, nil
}

// Get fetches the single record behind a pagination token or document id.
func (s *Summary[T]) Get(ctx context.Context, token string) (*T, error) {
	if token == "" {
		err := &ArgumentError{Message: "token must not be empty"}
		s.client.logger.ErrorContext(ctx, "rejecting fetch", xslog.Resource(s.resource), xslog.Error(err))
		return nil, err
	}

	result, err := s.client.Get(ctx, s.resource+"/"+token, nil)
	if err != nil {
		return nil, err
	}

	var datum T
	if err := decodeStrict(result.Data, &datum); err != nil {
		s.client.logger.ErrorContext(ctx, "decoding response",
			xslog.Resource(s.resource), xslog.NextToken(token), xslog.Error(err))
		return nil, err
	}
	return &datum, nil
}

// List fetches the collection for a date window. Empty start/end default
// to end minus one day and today respectively.
func (s *Summary[T]) List(ctx context.Context, start, end string) (*PaginatedResponse[T], error) {
	startDate, endDate, err := resolveDateWindow(start, end)
	if err != nil {
		s.client.logger.ErrorContext(ctx, "rejecting fetch", xslog.Resource(s.resource),
			xslog.StartDate(start), xslog.EndDate(end), xslog.Error(err))
		return nil, err
	}

	query := make(url.Values)
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	result, err := s.client.Get(ctx, s.resource, query)
	if err != nil {
		return nil, err
	}

	var page PaginatedResponse[T]
	if err := decodeStrict(result.Data, &page); err != nil {
		s.client.logger.ErrorContext(ctx, "decoding response",
			xslog.Resource(s.resource), xslog.StartDate(startDate), xslog.EndDate(endDate), xslog.Error(err))
		return nil, err
	}
	for i := range page.Data {
		if err := validateFields(&page.Data[i]); err != nil {
			s.client.logger.ErrorContext(ctx, "decoding response",
				xslog.Resource(s.resource), xslog.Error(err))
			return nil, err
		}
	}
	return &page, nil
}
