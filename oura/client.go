// Package oura provides a client for the Oura Ring v2 REST API.
//
// A Client is constructed from a personal access token and exposes one
// Summary resource per daily-aggregated endpoint, plus accessors for
// personal info and ring configuration:
//
//	client := oura.New(os.Getenv("OURA_ACCESS_TOKEN"))
//
//	result, err := client.DailySleep.Fetch(ctx, &oura.SummaryParams{
//		StartDate: "2025-02-01",
//		EndDate:   "2025-02-07",
//	})
//
// Every summary resource shares the same fetch protocol: a non-empty
// NextToken fetches a single record by its pagination token, otherwise a
// date window (defaulting to yesterday..today) fetches a collection.
package oura

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/garrettladley/goura/internal/xhttp"
	"golang.org/x/oauth2"
)

const (
	DefaultHostname = "api.ouraring.com"
	DefaultVersion  = "v2"
)

type Client struct {
	DailySleep      *Summary[DailySleep]
	DailyReadiness  *Summary[DailyReadiness]
	DailyActivity   *Summary[DailyActivity]
	DailyResilience *Summary[DailyResilience]
	DailySpO2       *Summary[DailySpO2]
	DailyStress     *Summary[DailyStress]
	EnhancedTags    *Summary[EnhancedTag]
	HeartRate       *Summary[HeartRate]
	RestModePeriods *Summary[RestModePeriod]
	Sessions        *Summary[Session]
	SleepPeriods    *Summary[SleepPeriod]
	SleepTime       *Summary[SleepTime]
	VO2Max          *Summary[VO2Max]
	Workouts        *Summary[Workout]

	hostname   string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client authenticating with the given personal access token.
func New(personalAccessToken string, opts ...Option) *Client {
	cfg := &clientConfig{
		hostname:    DefaultHostname,
		version:     DefaultVersion,
		tokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: personalAccessToken}),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	base := cfg.transport
	if base == nil {
		var topts []xhttp.TransportOption
		if cfg.insecureSkipVerify {
			topts = append(topts, xhttp.WithInsecureTLS())
		}
		base = xhttp.NewTransport(topts...)
	}

	transport := &ouraTransport{
		base:        base,
		tokenSource: cfg.tokenSource,
	}

	c := &Client{
		hostname:   cfg.hostname,
		baseURL:    "https://" + cfg.hostname + "/" + cfg.version + "/usercollection",
		httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
		logger:     cfg.logger,
	}

	c.DailySleep = newSummary[DailySleep](c, "daily_sleep")
	c.DailyReadiness = newSummary[DailyReadiness](c, "daily_readiness")
	c.DailyActivity = newSummary[DailyActivity](c, "daily_activity")
	c.DailyResilience = newSummary[DailyResilience](c, "daily_resilience")
	c.DailySpO2 = newSummary[DailySpO2](c, "daily_spo2")
	c.DailyStress = newSummary[DailyStress](c, "daily_stress")
	c.EnhancedTags = newSummary[EnhancedTag](c, "enhanced_tag")
	c.HeartRate = newSummary[HeartRate](c, "heartrate")
	c.RestModePeriods = newSummary[RestModePeriod](c, "rest_mode_period")
	c.Sessions = newSummary[Session](c, "session")
	c.SleepPeriods = newSummary[SleepPeriod](c, "sleep")
	c.SleepTime = newSummary[SleepTime](c, "sleep_time")
	c.VO2Max = newSummary[VO2Max](c, "vO2_max")
	c.Workouts = newSummary[Workout](c, "workout")

	return c
}

type clientConfig struct {
	hostname           string
	version            string
	tokenSource        oauth2.TokenSource
	logger             *slog.Logger
	timeout            time.Duration
	transport          http.RoundTripper
	insecureSkipVerify bool
}

type Option func(*clientConfig)

func WithHostname(hostname string) Option {
	return func(cfg *clientConfig) { cfg.hostname = hostname }
}

func WithVersion(version string) Option {
	return func(cfg *clientConfig) { cfg.version = version }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithTokenSource substitutes the static token with any oauth2.TokenSource.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(cfg *clientConfig) { cfg.tokenSource = ts }
}

// WithTransport replaces the underlying round tripper. The bearer token is
// still attached on every request.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.transport = rt }
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify() Option {
	return func(cfg *clientConfig) { cfg.insecureSkipVerify = true }
}
