package cli

import (
	"github.com/spf13/cobra"

	"github.com/idamarten/turnus/internal/intelligence"
	"github.com/idamarten/turnus/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Shifts   service.ShiftService
	Pay      service.PayService
	Settings service.SettingsService

	// Intent is nil when the LLM is disabled; ask degrades gracefully.
	Intent *intelligence.IntentService

	// IsInteractive reports whether stdin is a terminal. TUI commands
	// refuse to start otherwise.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "turnus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "turnus",
		Short: "Shift tracker and wage calculator",
	}

	root.AddCommand(
		newAddCmd(app),
		newSeriesCmd(app),
		newRemoveCmd(app),
		newShowCmd(app),
		newPayCmd(app),
		newWeekCmd(app),
		newCalcCmd(app),
		newSetupCmd(app),
		newAskCmd(app),
		newImportCmd(app),
		newServeCmd(app),
	)

	return root
}
