package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocabdrill/vocabdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show local quiz statistics",
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

		stats, err := st.EventRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}

		fmt.Printf("Sessions started:    %d\n", stats.SessionsStarted)
		fmt.Printf("Sessions completed:  %d\n", stats.SessionsCompleted)
		fmt.Printf("Questions answered:  %d\n", stats.QuestionsAnswered)
		fmt.Printf("Correct answers:     %d\n", stats.CorrectAnswers)
		fmt.Printf("Average accuracy:    %.0f%%\n", stats.AvgAccuracy)
		mins := stats.TotalTimeSecs / 60
		secs := stats.TotalTimeSecs % 60
		fmt.Printf("Total time:          %d:%02d\n", mins, secs)

		if len(stats.PerList) > 0 {
			fmt.Println("\nPer list:")
			for _, ls := range stats.PerList {
				fmt.Printf("  %-24s %d session(s), %d/%d correct\n",
					ls.ListName, ls.Sessions, ls.Correct, ls.Answered)
			}
		}
		return nil
	},
}
