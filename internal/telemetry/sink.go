package telemetry

import (
	"strconv"

	"github.com/vocabdrill/vocabdrill/internal/quiz"
)

// Reporter implements quiz.EventSink, mapping engine events onto the
// beacon's wire fields.
var _ quiz.EventSink = (*Reporter)(nil)

func (r *Reporter) QuizStart(e quiz.StartEvent) {
	r.send("quiz_start", map[string]string{
		"sessionId":      e.SessionID,
		"user":           orUnknown(e.User),
		"wordList":       orUnknown(e.List),
		"numQuestions":   strconv.Itoa(e.NumQuestions),
		"shuffleChoices": strconv.FormatBool(e.ShuffleChoices),
	})
}

func (r *Reporter) QuestionAnswer(e quiz.AnswerEvent) {
	r.send("question_answer", map[string]string{
		"sessionId":      e.SessionID,
		"user":           orUnknown(e.User),
		"wordList":       orUnknown(e.List),
		"questionNumber": strconv.Itoa(e.QuestionNumber),
		"word":           e.Word,
		"correct":        strconv.FormatBool(e.Correct),
		"selectedAnswer": e.Selected,
		"correctAnswer":  e.CorrectAnswer,
	})
}

func (r *Reporter) QuizComplete(e quiz.CompleteEvent) {
	r.send("quiz_complete", map[string]string{
		"sessionId":         e.SessionID,
		"user":              orUnknown(e.User),
		"wordList":          orUnknown(e.List),
		"numQuestions":      strconv.Itoa(e.NumQuestions),
		"shuffleChoices":    strconv.FormatBool(e.ShuffleChoices),
		"score":             strconv.Itoa(e.Score),
		"accuracy":          strconv.Itoa(e.Accuracy),
		"timeSpent":         strconv.Itoa(int(e.TimeSpent.Seconds())),
		"questionsAnswered": strconv.Itoa(e.QuestionsAnswered),
	})
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
