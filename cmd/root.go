package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "linuxplus",
	Short: "Terminal study app for the CompTIA Linux+ exam",
	Long: "Linux+ Study — a terminal quiz app with adaptive question selection,\n" +
		"streak scoring, achievements, and several practice modes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINUX_PLUS_DB env var)")
	rootCmd.Flags().String("questions", "", "Path to a question file (default: bundled sample questions)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LINUX_PLUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
