package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		hist := st.LoadHistoryOrNew(os.Stderr)
		ledger := st.LoadAchievementsOrNew(os.Stderr)

		answered := hist.TotalAnswered()
		correct := hist.TotalCorrect()
		fmt.Printf("Questions answered: %d\n", answered)
		if answered > 0 {
			fmt.Printf("Overall accuracy:   %.1f%%\n", float64(correct)/float64(answered)*100)
		}
		fmt.Printf("Lifetime points:    %d\n", ledger.PointsEarned)
		fmt.Printf("Days studied:       %d\n", len(ledger.DaysStudied))
		fmt.Printf("Badges unlocked:    %d\n", len(ledger.Badges))

		if len(hist.Categories) > 0 {
			fmt.Println("\nBy category:")
			cats := make([]string, 0, len(hist.Categories))
			for cat := range hist.Categories {
				cats = append(cats, cat)
			}
			sort.Strings(cats)
			for _, cat := range cats {
				rec := hist.Categories[cat]
				fmt.Printf("  %-40s %4d answered  %5.1f%%\n", cat, rec.Attempts, rec.Accuracy()*100)
			}
		}

		if keys := hist.ReviewKeys(); len(keys) > 0 {
			fmt.Printf("\nReview queue (%d):\n", len(keys))
			for _, key := range keys {
				fmt.Printf("  %s\n", key)
			}
		}
		return nil
	},
}
