package quiz

import (
	"math"
	"time"

	"github.com/vocabdrill/vocabdrill/internal/wordlist"
)

// Summary is the terminal aggregate of a finished session.
type Summary struct {
	Total     int
	Correct   int
	Incorrect int

	// Accuracy is round(100 * Correct / Total), 0 when Total is 0.
	Accuracy int

	TimeSpent         time.Duration
	QuestionsAnswered int

	// Missed holds the questions whose recorded answer was incorrect,
	// in quiz order. Questions skipped without answering do not appear.
	Missed []wordlist.Question
}

// Perfect reports the distinguished no-misses state, letting renderers
// show a marker instead of a bare empty list.
func (s Summary) Perfect() bool {
	return len(s.Missed) == 0
}

// Summarize computes the session summary. It is valid only once the
// cursor has run past the last question. The quiz_complete event is
// emitted on the first call only; later calls return the same summary.
func (s *Session) Summarize() (Summary, error) {
	if !s.Done() {
		return Summary{}, ErrNotFinished
	}
	if s.summarized {
		return s.summary, nil
	}

	total := len(s.quiz)
	sum := Summary{
		Total:             total,
		Correct:           s.score,
		Incorrect:         total - s.score,
		TimeSpent:         time.Since(s.StartedAt),
		QuestionsAnswered: len(s.answered),
	}
	if total > 0 {
		sum.Accuracy = int(math.Round(100 * float64(s.score) / float64(total)))
	}

	for _, q := range s.quiz {
		if a, ok := s.answered[q.Number]; ok && !a.Correct {
			sum.Missed = append(sum.Missed, q)
		}
	}

	s.summary = sum
	s.summarized = true

	if s.events != nil {
		s.events.QuizComplete(CompleteEvent{
			SessionID:         s.ID,
			User:              s.User,
			List:              s.List,
			NumQuestions:      sum.Total,
			ShuffleChoices:    s.ShuffleChoices,
			Score:             sum.Correct,
			Accuracy:          sum.Accuracy,
			TimeSpent:         sum.TimeSpent,
			QuestionsAnswered: sum.QuestionsAnswered,
		})
	}
	return sum, nil
}
