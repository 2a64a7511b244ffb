package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/vocabdrill/vocabdrill/internal/wordlist"
)

var (
	// ErrNoSelection is returned by Submit when the selected letter is
	// absent or not a valid choice label. Session state is unchanged.
	ErrNoSelection = errors.New("no answer selected")

	// ErrFinished is returned by Submit once the session has run out of
	// questions.
	ErrFinished = errors.New("quiz is finished")

	// ErrNotFinished is returned by Summarize while questions remain.
	ErrNotFinished = errors.New("quiz is not finished")
)

// Answer records a learner's first (and only) submission for a question.
type Answer struct {
	Selected string
	Correct  bool
}

// Outcome is the result of a Submit call, shaped for feedback display.
type Outcome struct {
	Correct       bool
	CorrectLetter string
	CorrectText   string
	// AlreadyAnswered is true when the question had a prior answer and
	// this call changed nothing.
	AlreadyAnswered bool
}

// Options configures a new session.
type Options struct {
	User string
	List string

	// Size is the requested number of questions; the session holds
	// min(Size, dataset size). Zero or negative means the whole list.
	Size int

	// ShuffleChoices controls the choice presentation policy. The flag
	// is latched per question at first render, not re-read later.
	ShuffleChoices bool

	// Rand supplies the random source; nil uses a time-seeded one.
	Rand *rand.Rand

	// Events receives session events; nil disables emission.
	Events EventSink
}

// Session is one run of the quiz from build to summary. It exclusively
// owns its state; a new build replaces the session wholesale rather
// than mutating an old one.
type Session struct {
	ID             string
	User           string
	List           string
	ShuffleChoices bool
	StartedAt      time.Time

	quiz       []wordlist.Question
	current    int
	score      int
	answered   map[int]Answer
	order      map[int][]string
	rng        *rand.Rand
	events     EventSink
	summarized bool
	summary    Summary
}

// Start draws a random sample from the dataset and builds a fresh
// session. It fails with wordlist.ErrEmptyDataset before any state is
// created when the dataset has no questions, and emits a quiz_start
// event otherwise.
func Start(ds *wordlist.Dataset, opts Options) (*Session, error) {
	if ds == nil || len(ds.Questions) == 0 {
		return nil, wordlist.ErrEmptyDataset
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}

	pool := slices.Clone(ds.Questions)
	fisherYates(pool, rng)

	size := opts.Size
	if size <= 0 || size > len(pool) {
		size = len(pool)
	}

	s := &Session{
		ID:             newSessionID(),
		User:           opts.User,
		List:           opts.List,
		ShuffleChoices: opts.ShuffleChoices,
		StartedAt:      time.Now(),
		quiz:           pool[:size],
		answered:       make(map[int]Answer, size),
		order:          make(map[int][]string, size),
		rng:            rng,
		events:         opts.Events,
	}
	if s.List == "" {
		s.List = ds.Name
	}

	if s.events != nil {
		s.events.QuizStart(StartEvent{
			SessionID:      s.ID,
			User:           s.User,
			List:           s.List,
			NumQuestions:   len(s.quiz),
			ShuffleChoices: s.ShuffleChoices,
		})
	}
	return s, nil
}

// newSessionID builds the opaque per-session identifier.
func newSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// fisherYates shuffles xs in place with a uniform permutation.
func fisherYates[T any](xs []T, rng *rand.Rand) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.quiz) }

// Index returns the 0-based cursor into the quiz.
func (s *Session) Index() int { return s.current }

// Score returns the count of correct answers so far.
func (s *Session) Score() int { return s.score }

// AnsweredCount returns how many questions have an answer record.
func (s *Session) AnsweredCount() int { return len(s.answered) }

// AnswerFor returns the recorded answer for a question number.
func (s *Session) AnswerFor(number int) (Answer, bool) {
	a, ok := s.answered[number]
	return a, ok
}

// Done reports whether the cursor has run past the last question.
func (s *Session) Done() bool { return s.current >= len(s.quiz) }

// Current returns the question at the cursor, or false once the
// session is exhausted.
func (s *Session) Current() (wordlist.Question, bool) {
	if s.Done() {
		return wordlist.Question{}, false
	}
	return s.quiz[s.current], true
}

// Questions returns the session's question list in quiz order.
func (s *Session) Questions() []wordlist.Question {
	return slices.Clone(s.quiz)
}

// ChoiceOrder returns the display order of the four choice letters for
// a question. The order is generated on first call — canonical A-D,
// shuffled when the session's shuffle flag was set — and latched for
// the rest of the session, so an answered question never reshuffles.
func (s *Session) ChoiceOrder(q wordlist.Question) []string {
	if cached, ok := s.order[q.Number]; ok {
		return slices.Clone(cached)
	}
	letters := slices.Clone(wordlist.Letters)
	if s.ShuffleChoices {
		fisherYates(letters, s.rng)
	}
	s.order[q.Number] = letters
	return slices.Clone(letters)
}

// Submit records the answer for the current question. The first
// submission creates the answer record, updates the score, and emits a
// question_answer event; later submissions for the same question are
// no-ops that return the same outcome for display.
func (s *Session) Submit(selected string) (Outcome, error) {
	q, ok := s.Current()
	if !ok {
		return Outcome{}, ErrFinished
	}
	if _, valid := q.Choices[selected]; !valid {
		return Outcome{}, ErrNoSelection
	}

	if prev, done := s.answered[q.Number]; done {
		return Outcome{
			Correct:         prev.Correct,
			CorrectLetter:   q.Answer,
			CorrectText:     q.Choices[q.Answer],
			AlreadyAnswered: true,
		}, nil
	}

	correct := selected == q.Answer
	s.answered[q.Number] = Answer{Selected: selected, Correct: correct}
	if correct {
		s.score++
	}

	if s.events != nil {
		s.events.QuestionAnswer(AnswerEvent{
			SessionID:      s.ID,
			User:           s.User,
			List:           s.List,
			QuestionNumber: q.Number,
			Word:           q.Word,
			Correct:        correct,
			Selected:       selected,
			CorrectAnswer:  q.Answer,
		})
	}

	return Outcome{
		Correct:       correct,
		CorrectLetter: q.Answer,
		CorrectText:   q.Choices[q.Answer],
	}, nil
}

// Advance moves the cursor forward one question. Answering first is
// not required; skipped questions simply never gain an answer record.
func (s *Session) Advance() {
	if s.current < len(s.quiz) {
		s.current++
	}
}
