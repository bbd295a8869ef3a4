package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all history, points, and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to erase without --yes")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ResetAll(); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("All study data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm erasing all data")
}
