package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/idamarten/turnus/internal/cli"
	"github.com/idamarten/turnus/internal/db"
	"github.com/idamarten/turnus/internal/intelligence"
	"github.com/idamarten/turnus/internal/llm"
	"github.com/idamarten/turnus/internal/repository"
	"github.com/idamarten/turnus/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	// DB path: env var or default ~/.turnus/turnus.db
	dbPath := os.Getenv("TURNUS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".turnus", "turnus.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	shiftRepo := repository.NewSQLiteShiftRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := db.NewUnitOfWork(database)

	app := &cli.App{
		Shifts:   service.NewShiftService(shiftRepo, settingsRepo),
		Pay:      service.NewPayService(shiftRepo, settingsRepo),
		Settings: service.NewSettingsService(settingsRepo, uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Conversational parsing only when the LLM is enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		policy := intelligence.DefaultConfirmationPolicy(llmCfg.ConfidenceThreshold)
		app.Intent = intelligence.NewIntentService(llmClient, policy)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
