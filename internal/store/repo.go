package store

import (
	"context"
	"database/sql"
	"fmt"
)

// QuizEventData is one row of the quiz_events log. Unused fields for a
// given event type stay at their zero values.
type QuizEventData struct {
	SessionID string
	Event     string
	Learner   string
	ListName  string

	// question_answer fields.
	QuestionNumber int
	Word           string
	Selected       string
	CorrectAnswer  string
	Correct        bool

	// quiz_start / quiz_complete fields.
	NumQuestions      int
	Score             int
	Accuracy          int
	DurationSecs      int
	QuestionsAnswered int
}

// ListStats aggregates play history for one word list.
type ListStats struct {
	ListName string
	Sessions int
	Answered int
	Correct  int
}

// Stats aggregates the whole local event log.
type Stats struct {
	SessionsStarted   int
	SessionsCompleted int
	QuestionsAnswered int
	CorrectAnswers    int
	AvgAccuracy       float64
	TotalTimeSecs     int
	PerList           []ListStats
}

// EventRepo provides append and aggregate access to quiz events.
type EventRepo interface {
	Append(ctx context.Context, data QuizEventData) error
	Stats(ctx context.Context) (Stats, error)
	Reset(ctx context.Context) error
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) Append(ctx context.Context, data QuizEventData) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO quiz_events (
		session_id, event, learner, list_name,
		question_number, word, selected, correct_answer, correct,
		num_questions, score, accuracy, duration_secs, questions_answered
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Event, data.Learner, data.ListName,
		data.QuestionNumber, data.Word, data.Selected, data.CorrectAnswer, boolToInt(data.Correct),
		data.NumQuestions, data.Score, data.Accuracy, data.DurationSecs, data.QuestionsAnswered,
	)
	if err != nil {
		return fmt.Errorf("append quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	err := r.db.QueryRowContext(ctx, `SELECT
		COUNT(CASE WHEN event = 'quiz_start' THEN 1 END),
		COUNT(CASE WHEN event = 'quiz_complete' THEN 1 END),
		COUNT(CASE WHEN event = 'question_answer' THEN 1 END),
		COUNT(CASE WHEN event = 'question_answer' AND correct = 1 THEN 1 END),
		COALESCE(AVG(CASE WHEN event = 'quiz_complete' THEN accuracy END), 0),
		COALESCE(SUM(CASE WHEN event = 'quiz_complete' THEN duration_secs END), 0)
	FROM quiz_events`).Scan(
		&stats.SessionsStarted,
		&stats.SessionsCompleted,
		&stats.QuestionsAnswered,
		&stats.CorrectAnswers,
		&stats.AvgAccuracy,
		&stats.TotalTimeSecs,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT
		list_name,
		COUNT(CASE WHEN event = 'quiz_start' THEN 1 END),
		COUNT(CASE WHEN event = 'question_answer' THEN 1 END),
		COUNT(CASE WHEN event = 'question_answer' AND correct = 1 THEN 1 END)
	FROM quiz_events
	WHERE list_name != ''
	GROUP BY list_name
	ORDER BY list_name`)
	if err != nil {
		return Stats{}, fmt.Errorf("query per-list stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ls ListStats
		if err := rows.Scan(&ls.ListName, &ls.Sessions, &ls.Answered, &ls.Correct); err != nil {
			return Stats{}, fmt.Errorf("scan per-list stats: %w", err)
		}
		stats.PerList = append(stats.PerList, ls)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate per-list stats: %w", err)
	}

	return stats, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quiz_events`); err != nil {
		return fmt.Errorf("reset quiz events: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
