package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/goura/oura"
)

type summaryFetcher func(ctx context.Context, client *oura.Client, params oura.SummaryParams) (any, error)

// fetchAny adapts one typed summary resource into the dynamic dispatch
// table, unwrapping the tagged result into whichever shape came back.
func fetchAny[T any](resource func(*oura.Client) *oura.Summary[T]) summaryFetcher {
	return func(ctx context.Context, client *oura.Client, params oura.SummaryParams) (any, error) {
		result, err := resource(client).Fetch(ctx, &params)
		if err != nil {
			return nil, err
		}
		if datum, ok := result.Datum(); ok {
			return datum, nil
		}
		page, _ := result.Collection()
		return page, nil
	}
}

var summaryFetchers = map[string]summaryFetcher{
	"daily_sleep":      fetchAny(func(c *oura.Client) *oura.Summary[oura.DailySleep] { return c.DailySleep }),
	"daily_readiness":  fetchAny(func(c *oura.Client) *oura.Summary[oura.DailyReadiness] { return c.DailyReadiness }),
	"daily_activity":   fetchAny(func(c *oura.Client) *oura.Summary[oura.DailyActivity] { return c.DailyActivity }),
	"daily_resilience": fetchAny(func(c *oura.Client) *oura.Summary[oura.DailyResilience] { return c.DailyResilience }),
	"daily_spo2":       fetchAny(func(c *oura.Client) *oura.Summary[oura.DailySpO2] { return c.DailySpO2 }),
	"daily_stress":     fetchAny(func(c *oura.Client) *oura.Summary[oura.DailyStress] { return c.DailyStress }),
	"enhanced_tag":     fetchAny(func(c *oura.Client) *oura.Summary[oura.EnhancedTag] { return c.EnhancedTags }),
	"heartrate":        fetchAny(func(c *oura.Client) *oura.Summary[oura.HeartRate] { return c.HeartRate }),
	"rest_mode_period": fetchAny(func(c *oura.Client) *oura.Summary[oura.RestModePeriod] { return c.RestModePeriods }),
	"session":          fetchAny(func(c *oura.Client) *oura.Summary[oura.Session] { return c.Sessions }),
	"sleep":            fetchAny(func(c *oura.Client) *oura.Summary[oura.SleepPeriod] { return c.SleepPeriods }),
	"sleep_time":       fetchAny(func(c *oura.Client) *oura.Summary[oura.SleepTime] { return c.SleepTime }),
	"vO2_max":          fetchAny(func(c *oura.Client) *oura.Summary[oura.VO2Max] { return c.VO2Max }),
	"workout":          fetchAny(func(c *oura.Client) *oura.Summary[oura.Workout] { return c.Workouts }),
}

func summaryCmd() *cobra.Command {
	var start, end, nextToken string

	cmd := &cobra.Command{
		Use:   "summary <resource>",
		Short: "Fetch a summary resource as JSON",
		Long: "Fetches a summary resource. With --next-token the single record behind\n" +
			"the token is fetched; otherwise --start/--end select a date window,\n" +
			"defaulting to yesterday..today.\n\nResources: " + strings.Join(summaryResources(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fetch, ok := summaryFetchers[args[0]]
			if !ok {
				return fmt.Errorf("unknown resource %q (valid: %s)", args[0], strings.Join(summaryResources(), ", "))
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			out, err := fetch(cmd.Context(), client, oura.SummaryParams{
				StartDate: start,
				EndDate:   end,
				NextToken: nextToken,
			})
			if err != nil {
				return err
			}

			encoded, err := go_json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding output: %w", err)
			}
			fmt.Println(string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&nextToken, "next-token", "", "pagination token; takes precedence over dates")

	return cmd
}

func summaryResources() []string {
	names := make([]string, 0, len(summaryFetchers))
	for name := range summaryFetchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
