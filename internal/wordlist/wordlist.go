package wordlist

import (
	"errors"
	"fmt"
	"strings"
)

// Letters are the four choice labels every question carries.
var Letters = []string{"A", "B", "C", "D"}

// ErrEmptyDataset is returned when a resolved dataset has no questions.
// Callers must refuse to build a session from such a dataset.
var ErrEmptyDataset = errors.New("word list has no questions")

// Question is a single multiple-choice vocabulary question.
// The Number is unique within its dataset and is the key used for
// answer records and choice-order caching.
type Question struct {
	Number  int               `json:"number"`
	Word    string            `json:"word"`
	Choices map[string]string `json:"choices"`
	Answer  string            `json:"answer"`
}

// Validate checks the structural invariants of a question: exactly the
// four A-D choices, and an answer that is one of them.
func (q Question) Validate() error {
	if q.Word == "" {
		return fmt.Errorf("question %d: empty word", q.Number)
	}
	if len(q.Choices) != len(Letters) {
		return fmt.Errorf("question %d: %d choices, want %d", q.Number, len(q.Choices), len(Letters))
	}
	for _, letter := range Letters {
		if _, ok := q.Choices[letter]; !ok {
			return fmt.Errorf("question %d: missing choice %s", q.Number, letter)
		}
	}
	if _, ok := q.Choices[q.Answer]; !ok {
		return fmt.Errorf("question %d: answer %q is not a choice label", q.Number, q.Answer)
	}
	return nil
}

// Dataset is a named word list: a definitions map plus an ordered
// collection of questions with unique numbers.
type Dataset struct {
	Name        string            `json:"name"`
	Definitions map[string]string `json:"definitions"`
	Questions   []Question        `json:"questions"`
}

// Validate checks every question and the uniqueness of question numbers.
func (d *Dataset) Validate() error {
	seen := make(map[int]bool, len(d.Questions))
	for _, q := range d.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("list %q: %w", d.Name, err)
		}
		if seen[q.Number] {
			return fmt.Errorf("list %q: duplicate question number %d", d.Name, q.Number)
		}
		seen[q.Number] = true
	}
	return nil
}

// LookupDefinition returns the raw definition text for a word, trying the
// exact spelling first and the uppercased spelling as a fallback. The
// second return is false when no definition exists, so callers can render
// an explicit placeholder instead of an empty string.
func (d *Dataset) LookupDefinition(word string) (string, bool) {
	if def, ok := d.Definitions[word]; ok && strings.TrimSpace(def) != "" {
		return strings.TrimSpace(def), true
	}
	if def, ok := d.Definitions[strings.ToUpper(word)]; ok && strings.TrimSpace(def) != "" {
		return strings.TrimSpace(def), true
	}
	return "", false
}
