package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/pool"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a question file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := pool.LoadFile(args[0])
		if err != nil {
			return err
		}
		p := pool.New(questions, os.Stderr)
		fmt.Printf("%s: %d questions, %d categories\n", args[0], p.Len(), len(p.Categories()))
		if dropped := len(questions) - p.Len(); dropped > 0 {
			return fmt.Errorf("%d question(s) failed validation", dropped)
		}
		return nil
	},
}
