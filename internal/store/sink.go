package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/vocabdrill/vocabdrill/internal/quiz"
)

// EventSink mirrors engine events into the local log. Writes are
// best-effort: a failed insert is logged and never surfaced to the
// quiz flow.
type EventSink struct {
	repo EventRepo
	log  *zap.Logger
}

var _ quiz.EventSink = (*EventSink)(nil)

// NewEventSink wraps an EventRepo as a quiz.EventSink.
func NewEventSink(repo EventRepo, log *zap.Logger) *EventSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventSink{repo: repo, log: log}
}

func (s *EventSink) QuizStart(e quiz.StartEvent) {
	s.append(QuizEventData{
		SessionID:    e.SessionID,
		Event:        "quiz_start",
		Learner:      e.User,
		ListName:     e.List,
		NumQuestions: e.NumQuestions,
	})
}

func (s *EventSink) QuestionAnswer(e quiz.AnswerEvent) {
	s.append(QuizEventData{
		SessionID:      e.SessionID,
		Event:          "question_answer",
		Learner:        e.User,
		ListName:       e.List,
		QuestionNumber: e.QuestionNumber,
		Word:           e.Word,
		Selected:       e.Selected,
		CorrectAnswer:  e.CorrectAnswer,
		Correct:        e.Correct,
	})
}

func (s *EventSink) QuizComplete(e quiz.CompleteEvent) {
	s.append(QuizEventData{
		SessionID:         e.SessionID,
		Event:             "quiz_complete",
		Learner:           e.User,
		ListName:          e.List,
		NumQuestions:      e.NumQuestions,
		Score:             e.Score,
		Accuracy:          e.Accuracy,
		DurationSecs:      int(e.TimeSpent.Seconds()),
		QuestionsAnswered: e.QuestionsAnswered,
	})
}

func (s *EventSink) append(data QuizEventData) {
	if err := s.repo.Append(context.Background(), data); err != nil {
		s.log.Warn("failed to log quiz event",
			zap.String("event", data.Event), zap.Error(err))
	}
}
