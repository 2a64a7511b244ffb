package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vocabdrill/vocabdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vocabdrill",
	Short: "ISEE vocabulary quiz for the terminal",
	Long:  "VocabDrill — terminal vocabulary quiz that drills ISEE word lists with instant feedback and missed-word review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VOCABDRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VOCABDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
