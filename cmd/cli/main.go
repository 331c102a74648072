package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirasaad/aifinance/infra/initializer"
	"github.com/amirasaad/aifinance/pkg/app"
	"github.com/amirasaad/aifinance/pkg/config"
)

var Version = "dev"

var envFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aifinance",
		Short:         "AI finance tracker: knowledge base, advisor and fraud alerts",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "environment file to load")

	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(adviseCmd())
	rootCmd.AddCommand(alertsCmd())
	return rootCmd
}

// bootstrap builds the application the same way the server does. Startup
// ingestion is skipped; the ingest command runs it explicitly.
func bootstrap(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	deps, cleanup, err := initializer.InitializeDependencies(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a, err := app.New(deps, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return a, cleanup, nil
}
