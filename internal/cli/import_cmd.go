package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idamarten/turnus/internal/cli/formatter"
	"github.com/idamarten/turnus/internal/importer"
	"github.com/idamarten/turnus/internal/service"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import shifts and settings from a JSON file",
		Long: "Load a JSON backup of shifts and optional wage settings.\n" +
			"Shifts that already exist are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.Load(args[0])
			if err != nil {
				return err
			}
			if err := importer.Validate(schema); err != nil {
				return err
			}

			ctx := context.Background()
			out := cmd.OutOrStdout()

			if settings := importer.ToSettings(schema); settings != nil {
				if err := app.Settings.Update(ctx, settings); err != nil {
					return fmt.Errorf("importing settings: %w", err)
				}
				fmt.Fprintln(out, formatter.StyleGreen.Render("Settings imported."))
			}

			created, duplicates := 0, 0
			for _, in := range importer.ToShiftInputs(schema) {
				res, err := app.Shifts.Add(ctx, in.Date, in.Start, in.End, in.Note)
				if err != nil {
					return fmt.Errorf("importing shift on %s: %w", in.Date.Format(dateLayout), err)
				}
				if res.Status == service.AddDuplicate {
					duplicates++
				} else {
					created++
				}
			}
			if len(schema.Shifts) > 0 {
				fmt.Fprintf(out, "%s %d added, %d already existed\n",
					formatter.StyleGreen.Render("Shifts:"), created, duplicates)
			}
			return nil
		},
	}
	return cmd
}
