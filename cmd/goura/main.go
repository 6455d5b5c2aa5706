package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/goura/internal/config"
	"github.com/garrettladley/goura/internal/version"
	"github.com/garrettladley/goura/internal/xslog"
	"github.com/garrettladley/goura/oura"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "goura",
		Short:   "Oura Ring data in your terminal",
		Version: version.Get(),
	}

	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(ringCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(dashboardCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func newClient() (*oura.Client, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	opts := []oura.Option{
		oura.WithHostname(cfg.Hostname),
		oura.WithVersion(cfg.Version),
		oura.WithTimeout(cfg.Timeout),
		oura.WithLogger(xslog.NewLoggerFromEnv(os.Stderr)),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, oura.WithInsecureSkipVerify())
	}

	return oura.New(cfg.AccessToken, opts...), nil
}
