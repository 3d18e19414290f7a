package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/dto"
	"github.com/SscSPs/freight_desk/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	convertSource string
	convertDate   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <amount> <from> <to>",
	Short: "Convert an amount with the applicable weekly rate",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}

		req := dto.ConvertRequest{
			Amount:           amount,
			FromCurrencyCode: args[1],
			ToCurrencyCode:   args[2],
		}
		if convertSource != "" {
			src := domain.RateSource(strings.ToUpper(convertSource))
			req.Source = &src
		}
		if convertDate != "" {
			req.Date = &convertDate
		}

		ctx := context.Background()
		l, err := openLedger(ctx)
		if err != nil {
			return err
		}
		defer l.close()

		result, err := l.exchangeRate.Convert(ctx, req)
		if err != nil {
			return err
		}
		target, err := l.currency.GetCurrencyByCode(ctx, result.ToCurrencyCode)
		if err != nil {
			return err
		}

		how := "direct"
		if result.Inverse {
			how = "inverse"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
			result.OriginalAmount.String(), result.FromCurrencyCode,
			utils.FormatWithCurrencyPrecision(result.ConvertedAmount, *target), result.ToCurrencyCode)
		fmt.Fprintf(cmd.OutOrStdout(), "rate %s (%s, source %s, %s)\n",
			result.RateUsed.String(), how, result.Source, result.AsOf.Format(domain.DateLayout))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertSource, "source", "", "rate source; the configured priority is used when empty")
	convertCmd.Flags().StringVar(&convertDate, "date", "", "date (YYYY-MM-DD); today when empty")
}
