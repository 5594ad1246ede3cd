package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizmith/quizmith/internal/advisor"
	"github.com/quizmith/quizmith/internal/app"
	"github.com/quizmith/quizmith/internal/llm"
	"github.com/quizmith/quizmith/internal/qgen"
	"github.com/quizmith/quizmith/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	// Without a provider the app still works: questions come from the
	// built-in set and coaching text degrades to placeholders.
	var generator qgen.Generator
	var coachProvider llm.Provider
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question generation and coaching will use built-in fallbacks.")
	} else {
		generator = qgen.New(provider, qgen.DefaultConfig())
		coachProvider = provider
	}

	opts := app.Options{
		Loader:    qgen.NewLoader(generator),
		Advisor:   advisor.NewService(coachProvider),
		EventRepo: eventRepo,
	}

	return app.Run(opts)
}
