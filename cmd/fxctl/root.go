package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/freight_desk/internal/core/services"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
	"github.com/SscSPs/freight_desk/internal/platform/config"
	"github.com/SscSPs/freight_desk/internal/repositories/database/pgsql"
	"github.com/SscSPs/freight_desk/pkg/database"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	logger  *slog.Logger
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fxctl",
	Short: "Operator tooling for the weekly exchange rate ledger",
	Long: `fxctl works directly against the freight desk database.

It can apply migrations, import a weekly rate sheet from CSV,
show the week window for a date and convert amounts with the
same resolution rules the API uses.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tokenCmd)
}

// ledger holds the services a database-backed command needs.
type ledger struct {
	currency     portssvc.CurrencySvcFacade
	exchangeRate portssvc.ExchangeRateSvcFacade
	close        func()
}

func openLedger(ctx context.Context) (*ledger, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, err
	}
	repos := pgsql.NewRepositoryProvider(pool)
	return &ledger{
		currency: services.NewCurrencyService(repos.CurrencyRepo),
		exchangeRate: services.NewExchangeRateService(
			repos.ExchangeRateRepo,
			repos.CurrencyRepo,
			services.WithSourcePriority(cfg.SourcePriority),
			services.WithBusinessLocation(cfg.BusinessLocation),
		),
		close: func() { database.ClosePgxPool(pool) },
	}, nil
}
