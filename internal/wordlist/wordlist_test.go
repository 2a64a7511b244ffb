package wordlist

import (
	"errors"
	"strings"
	"testing"
)

func validQuestion() Question {
	return Question{
		Number: 1,
		Word:   "ABATE",
		Choices: map[string]string{
			"A": "to lessen",
			"B": "to increase",
			"C": "to shout",
			"D": "to wander",
		},
		Answer: "A",
	}
}

func TestQuestionValidate(t *testing.T) {
	if err := validQuestion().Validate(); err != nil {
		t.Fatalf("valid question: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Question)
		want   string
	}{
		{"empty word", func(q *Question) { q.Word = "" }, "empty word"},
		{"missing choice", func(q *Question) { delete(q.Choices, "C") }, "3 choices"},
		{"extra choice", func(q *Question) { q.Choices["E"] = "extra" }, "5 choices"},
		{"bad label", func(q *Question) {
			delete(q.Choices, "D")
			q.Choices["E"] = "mislabeled"
		}, "missing choice D"},
		{"answer not a label", func(q *Question) { q.Answer = "E" }, "not a choice label"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDatasetValidateDuplicateNumbers(t *testing.T) {
	q1 := validQuestion()
	q2 := validQuestion()
	q2.Word = "CANDOR"
	ds := &Dataset{Name: "dup", Questions: []Question{q1, q2}}
	err := ds.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want duplicate number error")
	}
	if !strings.Contains(err.Error(), "duplicate question number") {
		t.Errorf("error %q does not mention duplicate numbers", err)
	}
}

func TestLookupDefinition(t *testing.T) {
	ds := &Dataset{
		Name: "defs",
		Definitions: map[string]string{
			"ABATE":  "to lessen in intensity",
			"candor": "honest openness",
			"BLANK":  "   ",
		},
	}

	if def, ok := ds.LookupDefinition("ABATE"); !ok || def != "to lessen in intensity" {
		t.Errorf("LookupDefinition(ABATE) = %q, %v", def, ok)
	}
	// Uppercased fallback for words stored in caps.
	if def, ok := ds.LookupDefinition("abate"); !ok || def != "to lessen in intensity" {
		t.Errorf("LookupDefinition(abate) = %q, %v", def, ok)
	}
	// Exact-case entry that is not uppercase still resolves exactly.
	if _, ok := ds.LookupDefinition("candor"); !ok {
		t.Error("LookupDefinition(candor) not found")
	}
	if _, ok := ds.LookupDefinition("MISSING"); ok {
		t.Error("LookupDefinition(MISSING) found something")
	}
	// Whitespace-only text counts as missing.
	if _, ok := ds.LookupDefinition("BLANK"); ok {
		t.Error("LookupDefinition(BLANK) treated blank text as present")
	}
}

func TestRegistryFallback(t *testing.T) {
	reg := NewRegistry()
	q := validQuestion()
	reg.Add(&Dataset{Name: "isee-core", Questions: []Question{q}})
	reg.Add(&Dataset{Name: "extra", Questions: []Question{q}})

	// First added list is the default.
	if got := reg.DefaultName(); got != "isee-core" {
		t.Errorf("DefaultName() = %q, want %q", got, "isee-core")
	}

	ds, err := reg.Resolve("nonexistent-list")
	if err != nil {
		t.Fatalf("Resolve(nonexistent-list): %v", err)
	}
	if ds.Name != "isee-core" {
		t.Errorf("Resolve fell back to %q, want %q", ds.Name, "isee-core")
	}

	reg.SetDefault("extra")
	ds, err = reg.Resolve("nonexistent-list")
	if err != nil {
		t.Fatalf("Resolve after SetDefault: %v", err)
	}
	if ds.Name != "extra" {
		t.Errorf("Resolve fell back to %q, want %q", ds.Name, "extra")
	}

	// SetDefault on an unknown name is ignored.
	reg.SetDefault("ghost")
	if got := reg.DefaultName(); got != "extra" {
		t.Errorf("DefaultName() = %q after bogus SetDefault, want %q", got, "extra")
	}
}

func TestRegistryResolveEmpty(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Resolve("anything"); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Resolve on empty registry err = %v, want ErrEmptyDataset", err)
	}

	reg.Add(&Dataset{Name: "hollow"})
	if _, err := reg.Resolve("hollow"); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Resolve of zero-question list err = %v, want ErrEmptyDataset", err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	q := validQuestion()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		reg.Add(&Dataset{Name: name, Questions: []Question{q}})
	}
	names := reg.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
