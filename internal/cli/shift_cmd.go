package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/idamarten/turnus/internal/cli/formatter"
	"github.com/idamarten/turnus/internal/domain"
)

func newAddCmd(app *App) *cobra.Command {
	var dateStr, startStr, endStr, note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			start, err := domain.ParseTimeOfDay(startStr)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end, err := domain.ParseTimeOfDay(endStr)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			res, err := app.Shifts.Add(context.Background(), date, start, end, note)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAddResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "shift date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startStr, "start", "", "start time (HH:mm)")
	cmd.Flags().StringVar(&endStr, "end", "", "end time (HH:mm)")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newSeriesCmd(app *App) *cobra.Command {
	var fromStr, toStr, daysStr, startStr, endStr string
	var interval, offset int

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Record a recurring weekly shift series",
		Long: "Expand a weekly pattern into shifts and store them. Dates that\n" +
			"already have an identical shift are skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDate(fromStr)
			if err != nil {
				return err
			}
			to, err := parseDate(toStr)
			if err != nil {
				return err
			}
			weekdays, err := parseWeekdays(daysStr)
			if err != nil {
				return err
			}
			start, err := domain.ParseTimeOfDay(startStr)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end, err := domain.ParseTimeOfDay(endStr)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			res, err := app.Shifts.AddSeries(context.Background(), domain.SeriesPattern{
				From:          from,
				To:            to,
				Weekdays:      weekdays,
				Start:         start,
				End:           end,
				IntervalWeeks: interval,
				OffsetWeeks:   offset,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSeriesResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&daysStr, "days", "", "weekdays, e.g. mon,wed,fri")
	cmd.Flags().StringVar(&startStr, "start", "", "start time (HH:mm)")
	cmd.Flags().StringVar(&endStr, "end", "", "end time (HH:mm)")
	cmd.Flags().IntVar(&interval, "interval", 1, "repeat every N weeks")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip the first N weeks")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("days")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List shifts with pay for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			shifts, err := app.Shifts.ListPeriod(context.Background(), q, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShifts(shifts))
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	var flags periodFlags
	var id string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a shift by id, or all shifts in a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if id != "" {
				if err := app.Shifts.Remove(ctx, id); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Shift removed.")
				return nil
			}

			q, err := flags.query()
			if err != nil {
				return err
			}
			n, err := app.Shifts.RemovePeriod(ctx, q, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d shift(s).\n", n)
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&id, "id", "", "shift id to remove")
	return cmd
}
