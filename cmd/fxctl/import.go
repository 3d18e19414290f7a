package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	importSource    string
	importWeek      string
	importCreatedBy string
)

// importCmd bulk-upserts a weekly rate sheet from a CSV file.
var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a weekly rate sheet",
	Long: `Reads a CSV rate sheet and saves every line for one week and source.

Columns: from,to,rate[,rate_buy,rate_sell,source_reference,notes]
A header row starting with "from" is skipped. Lines whose currencies
are unknown or inactive are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := domain.RateSource(strings.ToUpper(importSource))
		if !source.Valid() {
			return fmt.Errorf("invalid source %q, expected one of %v", importSource, domain.RateSources)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		entries, err := readRateSheet(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		req := dto.BulkUpsertExchangeRatesRequest{Rates: entries, Source: source}
		if importWeek != "" {
			req.WeekStart = &importWeek
		}

		ctx := context.Background()
		l, err := openLedger(ctx)
		if err != nil {
			return err
		}
		defer l.close()

		result, err := l.exchangeRate.BulkUpsertExchangeRates(ctx, req, importCreatedBy)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Week %s, source %s: %d of %d rates saved\n", result.Week, result.Source, result.Count, len(entries))
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, r := range result.Stored {
			fmt.Fprintf(tw, "  stored\t%s/%s\t%s\n", r.FromCurrencyCode, r.ToCurrencyCode, r.Rate.String())
		}
		for _, sk := range result.Skipped {
			fmt.Fprintf(tw, "  skipped\t%s/%s\tentry %d: %s\n", sk.FromCurrencyCode, sk.ToCurrencyCode, sk.Index, sk.Reason)
		}
		return tw.Flush()
	},
}

func init() {
	importCmd.Flags().StringVar(&importSource, "source", string(domain.SourceManual), "rate source (BI, BCA, MANDIRI, MANUAL, API)")
	importCmd.Flags().StringVar(&importWeek, "week", "", "any date (YYYY-MM-DD) inside the target week; defaults to this week")
	importCmd.Flags().StringVar(&importCreatedBy, "created-by", "fxctl", "user id recorded on the saved rates")
}

// readRateSheet parses rate sheet rows. Optional columns may be left empty.
func readRateSheet(r io.Reader) ([]dto.RateEntryRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var entries []dto.RateEntryRequest
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		if len(entries) == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "from") {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: expected at least from,to,rate", line)
		}

		rate, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid rate %q", line, record[2])
		}
		entry := dto.RateEntryRequest{
			FromCurrencyCode: strings.TrimSpace(record[0]),
			ToCurrencyCode:   strings.TrimSpace(record[1]),
			Rate:             rate,
		}
		if entry.RateBuy, err = optionalDecimal(record, 3); err != nil {
			return nil, fmt.Errorf("line %d: invalid rate_buy: %w", line, err)
		}
		if entry.RateSell, err = optionalDecimal(record, 4); err != nil {
			return nil, fmt.Errorf("line %d: invalid rate_sell: %w", line, err)
		}
		entry.SourceReference = optionalString(record, 5)
		entry.Notes = optionalString(record, 6)
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, errors.New("rate sheet has no rows")
	}
	return entries, nil
}

func optionalDecimal(record []string, i int) (*decimal.Decimal, error) {
	s := optionalString(record, i)
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalString(record []string, i int) *string {
	if i >= len(record) {
		return nil
	}
	s := strings.TrimSpace(record[i])
	if s == "" {
		return nil
	}
	return &s
}
