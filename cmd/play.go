package cmd

import (
	"github.com/spf13/cobra"
)

// playCmd is an explicit alias for the root command's default behavior,
// so `vocabdrill play` works the same as bare `vocabdrill`.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
