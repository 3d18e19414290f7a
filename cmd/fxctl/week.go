package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/core/services"
	"github.com/spf13/cobra"
)

// weekCmd prints the week window a date falls in.
var weekCmd = &cobra.Command{
	Use:   "week [date]",
	Short: "Show the ISO week window for a date",
	Long:  `Prints the week number and Monday to Sunday window for a YYYY-MM-DD date, or for today in the business timezone.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var date *time.Time
		if len(args) == 1 {
			d, err := domain.ParseDate(args[0])
			if err != nil {
				return err
			}
			date = &d
		}

		// WeekOf needs no storage
		svc := services.NewExchangeRateService(nil, nil, services.WithBusinessLocation(cfg.BusinessLocation))
		w := svc.WeekOf(date)
		fmt.Fprintf(cmd.OutOrStdout(), "%d-W%02d  %s .. %s\n", w.Year, w.Number, w.Start.Format(domain.DateLayout), w.End.Format(domain.DateLayout))
		return nil
	},
}
