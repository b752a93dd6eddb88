// Package highlight turns raw source lines into styled spans for the
// viewer. It wraps chroma's lexers behind the small surface the UI needs:
// filename hint in, ordered (text, style) fragments out.
package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// styleName is the chroma style used for view mode.
const styleName = "monokai"

// Span is one styled fragment of a line.
type Span struct {
	Text      string
	Color     string // hex color, empty for the default foreground
	Bold      bool
	Italic    bool
	Underline bool
}

// Line tokenizes one line of text using the lexer matched from the
// filename hint. Unknown file types and lexer errors degrade to a single
// unstyled span; highlighting never fails the render.
func Line(filename, line string) []Span {
	if line == "" {
		return nil
	}
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, line)
	if err != nil {
		return []Span{{Text: line}}
	}

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	var spans []Span
	for tok := it(); tok != chroma.EOF; tok = it() {
		entry := style.Get(tok.Type)
		sp := Span{
			Text:      tok.Value,
			Bold:      entry.Bold == chroma.Yes,
			Italic:    entry.Italic == chroma.Yes,
			Underline: entry.Underline == chroma.Yes,
		}
		if entry.Colour.IsSet() {
			sp.Color = entry.Colour.String()
		}
		spans = append(spans, sp)
	}
	if len(spans) == 0 {
		return []Span{{Text: line}}
	}
	return spans
}
