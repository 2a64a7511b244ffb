package wordlist

import (
	"strings"
	"testing"
)

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantBase    string
		wantExample string
	}{
		{
			"base and example",
			"to lessen in intensity — Example: The storm began to abate by morning.",
			"to lessen in intensity",
			"The storm began to abate by morning.",
		},
		{
			"case-insensitive separator",
			"honest openness — EXAMPLE: Her candor surprised everyone.",
			"honest openness",
			"Her candor surprised everyone.",
		},
		{
			"no example clause",
			"to lessen in intensity",
			"to lessen in intensity",
			"",
		},
		{
			"only first separator splits",
			"first — Example: uses — Example: twice",
			"first",
			"uses — Example: twice",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := ParseDefinition(tt.raw)
			if def.Base != tt.wantBase {
				t.Errorf("Base = %q, want %q", def.Base, tt.wantBase)
			}
			if def.Example != tt.wantExample {
				t.Errorf("Example = %q, want %q", def.Example, tt.wantExample)
			}
			if def.HasExample() != (tt.wantExample != "") {
				t.Errorf("HasExample() = %v", def.HasExample())
			}
		})
	}
}

func TestDatasetDefinition(t *testing.T) {
	ds := &Dataset{
		Name: "defs",
		Definitions: map[string]string{
			"ABATE": "to lessen — Example: The rain abated.",
		},
	}
	def, ok := ds.Definition("abate")
	if !ok {
		t.Fatal("Definition(abate) not found")
	}
	if def.Base != "to lessen" || def.Example != "The rain abated." {
		t.Errorf("Definition = %+v", def)
	}
	if _, ok := ds.Definition("MISSING"); ok {
		t.Error("Definition(MISSING) found something")
	}
}

func TestHighlightVariants(t *testing.T) {
	segs := HighlightVariants("The storm abated, and the abatement pleased sailors.", "ABATE")

	var marked []string
	var rebuilt strings.Builder
	for _, seg := range segs {
		rebuilt.WriteString(seg.Text)
		if seg.Mark {
			marked = append(marked, seg.Text)
		}
	}

	// Segments reassemble the original text exactly.
	if got := rebuilt.String(); got != "The storm abated, and the abatement pleased sailors." {
		t.Errorf("segments rebuild %q", got)
	}
	if len(marked) != 2 {
		t.Fatalf("marked %v, want 2 matches", marked)
	}
	if marked[0] != "abated" {
		t.Errorf("marked[0] = %q, want %q", marked[0], "abated")
	}
	if marked[1] != "abatement" {
		t.Errorf("marked[1] = %q, want %q", marked[1], "abatement")
	}
}

func TestHighlightVariantsWholeWordOnly(t *testing.T) {
	// "cat" must not match inside "concatenate".
	segs := HighlightVariants("We concatenate strings; the cat watches.", "cat")
	var marked []string
	for _, seg := range segs {
		if seg.Mark {
			marked = append(marked, seg.Text)
		}
	}
	if len(marked) != 1 || marked[0] != "cat" {
		t.Errorf("marked %v, want [cat]", marked)
	}
}

func TestHighlightVariantsNoMatch(t *testing.T) {
	segs := HighlightVariants("Nothing here matches.", "ABATE")
	if len(segs) != 1 || segs[0].Mark {
		t.Fatalf("segs = %+v, want one unmarked segment", segs)
	}
	if segs[0].Text != "Nothing here matches." {
		t.Errorf("Text = %q", segs[0].Text)
	}
}

func TestHighlightVariantsEmptyInputs(t *testing.T) {
	if segs := HighlightVariants("", "word"); len(segs) != 1 || segs[0].Mark {
		t.Errorf("empty example: segs = %+v", segs)
	}
	segs := HighlightVariants("Some text.", "  ")
	if len(segs) != 1 || segs[0].Text != "Some text." || segs[0].Mark {
		t.Errorf("blank word: segs = %+v", segs)
	}
}
