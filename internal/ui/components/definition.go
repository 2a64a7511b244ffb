package components

import (
	"strings"

	"github.com/vocabdrill/vocabdrill/internal/ui/theme"
	"github.com/vocabdrill/vocabdrill/internal/wordlist"
)

// RenderDefinition renders a word's definition line for feedback and
// review panels: the base clause, then the example clause with every
// occurrence of the word (and its suffix variants) emphasized. Words
// without a definition get an explicit placeholder.
func RenderDefinition(ds *wordlist.Dataset, word string) string {
	def, ok := ds.Definition(word)
	if !ok {
		return theme.Hint.Render("Definition: (not available)")
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render("Definition: " + def.Base))
	if def.HasExample() {
		b.WriteString(theme.Hint.Render(" — Example: "))
		for _, seg := range wordlist.HighlightVariants(def.Example, word) {
			if seg.Mark {
				b.WriteString(theme.Mark.Render(seg.Text))
			} else {
				b.WriteString(theme.Hint.Render(seg.Text))
			}
		}
	}
	return b.String()
}
