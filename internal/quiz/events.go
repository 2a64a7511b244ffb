package quiz

import "time"

// StartEvent is emitted once when a session is built.
type StartEvent struct {
	SessionID      string
	User           string
	List           string
	NumQuestions   int
	ShuffleChoices bool
}

// AnswerEvent is emitted on the first submission for a question.
// Repeat submissions for the same question are never re-reported.
type AnswerEvent struct {
	SessionID      string
	User           string
	List           string
	QuestionNumber int
	Word           string
	Correct        bool
	Selected       string
	CorrectAnswer  string
}

// CompleteEvent is emitted once when a session is summarized.
type CompleteEvent struct {
	SessionID         string
	User              string
	List              string
	NumQuestions      int
	ShuffleChoices    bool
	Score             int
	Accuracy          int
	TimeSpent         time.Duration
	QuestionsAnswered int
}

// EventSink consumes session events. Implementations must not block:
// the engine calls them synchronously from the UI loop and never waits
// on delivery.
type EventSink interface {
	QuizStart(e StartEvent)
	QuestionAnswer(e AnswerEvent)
	QuizComplete(e CompleteEvent)
}

// MultiSink fans events out to several sinks.
type MultiSink []EventSink

func (m MultiSink) QuizStart(e StartEvent) {
	for _, s := range m {
		s.QuizStart(e)
	}
}

func (m MultiSink) QuestionAnswer(e AnswerEvent) {
	for _, s := range m {
		s.QuestionAnswer(e)
	}
}

func (m MultiSink) QuizComplete(e CompleteEvent) {
	for _, s := range m {
		s.QuizComplete(e)
	}
}
