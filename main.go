// Package main is the entry point for the self-assessment quarterly overview tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/config"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/database"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/display"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/logger"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/period"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/repository"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/review"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/taxcalc"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("selfemploy-uk %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)
	logger.InitHashSalt()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := database.SeedCategories(ctx, pool); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to seed categories")
	}

	logger.Log.Info().Msg("Database initialized successfully")

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info().Msg("Shutting down...")
		cancel()
	}()

	clock := period.SystemClock{}

	year := cfg.TaxYear
	if !cfg.TaxYearSet {
		year, err = period.CurrentTaxYear(clock.Now())
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to derive current tax year")
		}
	}

	if err := printYearOverview(ctx, pool, cfg.BusinessID, year, clock); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to build year overview")
	}
}

// printYearOverview renders the quarter rows and the full-year tax estimate
// for one business.
func printYearOverview(ctx context.Context, pool database.PGXDB, businessID string, year models.TaxYear, clock period.Clock) error {
	incomeRepo := repository.NewIncomeRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)
	submissionRepo := repository.NewSubmissionRepository(pool)

	logger.Log.Info().
		Str("business", logger.HashBusinessID(businessID)).
		Str("tax_year", year.Label()).
		Msg("Building year overview")

	overview := review.NewOverview(incomeRepo, expenseRepo, submissionRepo, clock)
	rows, err := overview.BuildYearOverview(ctx, businessID, year)
	if err != nil {
		return err
	}

	fmt.Println(display.TaxYearLabel(year))
	fmt.Println(display.DueByText(year))
	for _, row := range rows {
		marker := " "
		if row.IsCurrent {
			marker = "*"
		}
		totals := "totals not yet available"
		if row.TotalIncome != nil && row.TotalExpenses != nil {
			totals = fmt.Sprintf("income %s, expenses %s",
				display.Money(*row.TotalIncome), display.Money(*row.TotalExpenses))
		}
		fmt.Printf("%s %s  %s  %s  [%s]  %s\n",
			marker, row.Label, row.DateRangeText, row.DeadlineText, row.Status, totals)
	}

	turnover, err := incomeRepo.TotalByYear(ctx, businessID, year)
	if err != nil {
		return err
	}
	expenses, err := expenseRepo.DeductibleTotalByYear(ctx, businessID, year)
	if err != nil {
		return err
	}

	result, err := taxcalc.Calculate(turnover, expenses, year)
	if err != nil {
		return err
	}

	fmt.Printf("\nEstimated liability for %s\n", year.Label())
	fmt.Printf("  Net profit:         %s\n", display.Money(result.NetProfit))
	fmt.Printf("  Income Tax:         %s\n", display.Money(result.IncomeTax))
	fmt.Printf("  Class 4 NI:         %s\n", display.Money(result.NationalInsurance))
	fmt.Printf("  Total tax:          %s\n", display.Money(result.TotalTax))
	fmt.Printf("  Payments on account: %s\n", display.Money(result.PaymentOnAccount))
	fmt.Printf("  Grand total:        %s\n", display.Money(result.GrandTotal))

	return nil
}
