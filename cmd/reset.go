package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocabdrill/vocabdrill/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete local quiz history",
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

		if err := st.EventRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset events: %w", err)
		}
		fmt.Println("Quiz history cleared.")
		return nil
	},
}
