package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/app"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/pool"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/selection"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/store"
)

// runApp opens the store, builds the controller, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	p, err := loadPool(cmd)
	if err != nil {
		return err
	}

	hist := st.LoadHistoryOrNew(os.Stderr)
	hist.PruneReview(p.Contains)
	ledger := st.LoadAchievementsOrNew(os.Stderr)

	selector := selection.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	ctrl := quiz.New(quiz.DefaultConfig(), p, hist, ledger, selector, st)

	return app.Run(app.Options{Controller: ctrl})
}

// loadPool reads the --questions file, or falls back to the bundled
// sample set.
func loadPool(cmd *cobra.Command) (*pool.Pool, error) {
	path, _ := cmd.Flags().GetString("questions")
	if path == "" {
		return pool.BundledPool(os.Stderr), nil
	}
	questions, err := pool.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	p := pool.NewStderr(questions)
	if p.Len() == 0 {
		return nil, fmt.Errorf("question file %s has no usable questions", path)
	}
	return p, nil
}
