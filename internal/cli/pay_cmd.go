package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/idamarten/turnus/internal/cli/formatter"
	"github.com/idamarten/turnus/internal/engine"
)

func newPayCmd(app *App) *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Total pay for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			sum, err := app.Pay.Summary(context.Background(), q, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(sum))
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Show the ISO week number of a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if len(args) == 1 {
				var err error
				date, err = parseDate(args[0])
				if err != nil {
					return err
				}
			}

			week, year := engine.WeekOf(date)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(week, year, engine.WeekRange(week, year)))
			return nil
		},
	}
	return cmd
}
