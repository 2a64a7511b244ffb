package wordlist

import (
	"regexp"
	"strings"
)

// exampleSep splits a raw definition into its base text and example
// clause. Lists author definitions as "definition — Example: sentence".
var exampleSep = regexp.MustCompile(`(?i)—\s*Example:\s*`)

// Definition is a word definition split into a base clause and an
// optional usage example.
type Definition struct {
	Base    string
	Example string
}

// HasExample reports whether the definition carries a usage example.
func (d Definition) HasExample() bool {
	return d.Example != ""
}

// Definition looks up and parses the definition for a word. The second
// return is false when the dataset has no definition for the word.
func (d *Dataset) Definition(word string) (Definition, bool) {
	raw, ok := d.LookupDefinition(word)
	if !ok {
		return Definition{}, false
	}
	return ParseDefinition(raw), true
}

// ParseDefinition splits raw definition text on the example separator.
// Text without a separator is treated as a base definition with no example.
func ParseDefinition(raw string) Definition {
	parts := exampleSep.Split(raw, 2)
	if len(parts) == 2 {
		return Definition{
			Base:    strings.TrimSpace(parts[0]),
			Example: strings.TrimSpace(parts[1]),
		}
	}
	return Definition{Base: strings.TrimSpace(raw)}
}

// Segment is a run of example text, marked when it should be visually
// emphasized as an occurrence of the target word.
type Segment struct {
	Text string
	Mark bool
}

// HighlightVariants splits an example sentence into segments, marking
// every whole-word occurrence of the target word and its simple
// suffix variants (word plus any trailing letters, case-insensitive).
func HighlightVariants(example, word string) []Segment {
	base := strings.ToLower(strings.TrimSpace(word))
	if base == "" || example == "" {
		return []Segment{{Text: example}}
	}

	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(base) + `\w*\b`)
	if err != nil {
		return []Segment{{Text: example}}
	}

	var segs []Segment
	last := 0
	for _, m := range re.FindAllStringIndex(example, -1) {
		if m[0] > last {
			segs = append(segs, Segment{Text: example[last:m[0]]})
		}
		segs = append(segs, Segment{Text: example[m[0]:m[1]], Mark: true})
		last = m[1]
	}
	if last < len(example) {
		segs = append(segs, Segment{Text: example[last:]})
	}
	if len(segs) == 0 {
		return []Segment{{Text: example}}
	}
	return segs
}
