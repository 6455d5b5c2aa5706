package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/goura/oura"
)

func dashboardCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Sleep, readiness and activity scores side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var (
				sleep     *oura.PaginatedResponse[oura.DailySleep]
				readiness *oura.PaginatedResponse[oura.DailyReadiness]
				activity  *oura.PaginatedResponse[oura.DailyActivity]
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				sleep, err = client.DailySleep.List(ctx, start, end)
				return err
			})
			g.Go(func() error {
				var err error
				readiness, err = client.DailyReadiness.List(ctx, start, end)
				return err
			})
			g.Go(func() error {
				var err error
				activity, err = client.DailyActivity.List(ctx, start, end)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			rows := make(map[string]*dashboardRow)
			for _, d := range sleep.Data {
				row(rows, d.Day).sleep = d.Score
			}
			for _, d := range readiness.Data {
				row(rows, d.Day).readiness = d.Score
			}
			for _, d := range activity.Data {
				row(rows, d.Day).activity = d.Score
			}

			fmt.Println(renderDashboard(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")

	return cmd
}

type dashboardRow struct {
	sleep     *int
	readiness *int
	activity  *int
}

func row(rows map[string]*dashboardRow, day string) *dashboardRow {
	if r, ok := rows[day]; ok {
		return r
	}
	r := &dashboardRow{}
	rows[day] = r
	return r
}
