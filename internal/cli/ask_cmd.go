package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/idamarten/turnus/internal/cli/formatter"
	"github.com/idamarten/turnus/internal/engine"
	"github.com/idamarten/turnus/internal/intelligence"
	"github.com/idamarten/turnus/internal/llm"
)

func newAskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `ask "<natural language>"`,
		Short: "Parse natural language into a shift command",
		Long:  "Use a local Ollama model to turn free text into a structured shift operation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Intent == nil {
				return fmt.Errorf("LLM features are disabled. Use explicit commands:\n" +
					"  turnus add --date 2025-06-16 --start 09:00 --end 17:00\n" +
					"  turnus pay --period next_week\n\n" +
					"Enable with: TURNUS_LLM_ENABLED=true")
			}

			now := time.Now()
			resolution, err := app.Intent.Parse(context.Background(), args[0], now)
			if err != nil {
				if errors.Is(err, llm.ErrTimeout) {
					return fmt.Errorf("parse failed: %w (set TURNUS_LLM_PARSE_TIMEOUT_MS, e.g. 15000)", err)
				}
				return fmt.Errorf("parse failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatAskResolution(resolution))

			switch resolution.ExecutionState {
			case intelligence.StateExecuted:
				return dispatchIntent(app, out, resolution.ParsedIntent, now)
			case intelligence.StateNeedsConfirmation:
				if confirmPrompt(cmd.InOrStdin(), out) {
					return dispatchIntent(app, out, resolution.ParsedIntent, now)
				}
				fmt.Fprintln(out, "Cancelled.")
			case intelligence.StateNeedsClarification, intelligence.StateRejected:
				// Display already handled by the formatter.
			}
			return nil
		},
	}
	return cmd
}

// dispatchIntent maps a confirmed intent onto a service call.
func dispatchIntent(app *App, out io.Writer, intent *intelligence.ParsedIntent, now time.Time) error {
	ctx := context.Background()

	switch intent.Intent {
	case intelligence.IntentShiftAdd:
		a := intelligence.ExtractShiftAdd(intent.Arguments)
		res, err := app.Shifts.Add(ctx, a.Date, a.Start, a.End, a.Note)
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatter.FormatAddResult(res))

	case intelligence.IntentShiftAddSeries:
		res, err := app.Shifts.AddSeries(ctx, intelligence.ExtractSeriesPattern(intent.Arguments))
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatter.FormatSeriesResult(res))

	case intelligence.IntentShiftRemove:
		n, err := app.Shifts.RemovePeriod(ctx, intelligence.ExtractPeriodQuery(intent.Arguments), now)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed %d shift(s).\n", n)

	case intelligence.IntentShiftsShow:
		shifts, err := app.Shifts.ListPeriod(ctx, intelligence.ExtractPeriodQuery(intent.Arguments), now)
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatter.FormatShifts(shifts))

	case intelligence.IntentPaySummary:
		sum, err := app.Pay.Summary(ctx, intelligence.ExtractPeriodQuery(intent.Arguments), now)
		if err != nil {
			return err
		}
		fmt.Fprint(out, formatter.FormatSummary(sum))

	case intelligence.IntentWeekNumber:
		date := intelligence.ExtractWeekDate(intent.Arguments, now)
		week, year := engine.WeekOf(date)
		fmt.Fprint(out, formatter.FormatWeek(week, year, engine.WeekRange(week, year)))

	default:
		return fmt.Errorf("intent %q has no dispatcher", intent.Intent)
	}
	return nil
}

func confirmPrompt(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Confirm? [y/N]: ")
	reader := bufio.NewReader(in)
	text, _ := reader.ReadString('\n')
	text = strings.TrimSpace(strings.ToLower(text))
	return text == "y" || text == "yes"
}
