package highlight

import "github.com/charmbracelet/glamour"

// Markdown renders a markdown document for terminal display at the given
// wrap width. Used by view mode for .md files; edit mode always shows the
// raw text.
func Markdown(src string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(src)
}
