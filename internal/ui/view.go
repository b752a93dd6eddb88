package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"lspretty/internal/browser"
	"lspretty/internal/highlight"
	"lspretty/internal/term"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading…"
	}

	var sections []string
	sections = append(sections, m.headerView())

	var content string
	if m.focus == focusEditor && m.tabMgr.HasTabs() {
		content = m.tabBarView() + "\n" + m.editorView()
	} else {
		content = m.browserView()
	}

	// Overlays replace the content area.
	if _, pending := m.tabMgr.Pending(); pending {
		content = m.overlay(content, m.alertView())
	} else if m.showHelp {
		content = m.overlay(content, m.helpView())
	}
	sections = append(sections, content)

	if m.sess != nil {
		sections = append(sections, m.terminalView())
	}
	sections = append(sections, m.statusBarView())

	return strings.Join(sections, "\n")
}

func (m model) headerView() string {
	title := AccentBold().Render(IconFolder() + " " + m.cwd)
	if m.filtering || m.filterInput.Value() != "" {
		title += "  " + m.filterInput.View()
	}
	return PanelBorder(Vitesse.Border).Width(m.width - 2).Render(clipLine(title, m.width-4))
}

// browserView renders the file table, keeping the selection visible.
func (m model) browserView() string {
	h := m.listHeight()
	if len(m.visible) == 0 {
		empty := MutedText().Render("  (empty)")
		return lipgloss.NewStyle().Height(h).Render(empty)
	}
	start := 0
	if m.selected >= h {
		start = m.selected - h + 1
	}
	end := start + h
	if end > len(m.visible) {
		end = len(m.visible)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		e := m.visible[i]
		row := m.fileRow(e)
		if i == m.selected {
			row = SelectedRow().Render("➤ " + xansi.Strip(row))
		} else {
			row = "  " + row
		}
		b.WriteString(clipLine(row, m.width))
		if i != end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m model) fileRow(e browser.Entry) string {
	name := runewidth.Truncate(e.Name, 30, "…")
	name = runewidth.FillRight(name, 30)
	switch {
	case e.IsDir:
		name = DirName().Render(name)
	case browser.IsTextFile(e):
		name = TextName().Render(name)
	}
	size := fmt.Sprintf("%10s", browser.FormatSize(e.Size, m.humanSizes))
	meta := MutedText().Render(fmt.Sprintf("%s %s %s", size, e.Permissions(), browser.FormatTime(e.ModTime)))
	return fmt.Sprintf("%s %s %s", IconFor(e), name, meta)
}

func (m model) tabBarView() string {
	var parts []string
	for i, t := range m.tabMgr.Tabs() {
		name := t.DisplayName()
		st := lipgloss.NewStyle().Foreground(Vitesse.Secondary)
		if t.Dirty() {
			st = st.Foreground(Vitesse.Yellow).Italic(true)
		}
		if i == m.tabMgr.ActiveIndex() {
			st = st.Foreground(Vitesse.OnAccent).Background(Vitesse.Yellow).Italic(false)
		}
		parts = append(parts, st.Render(" "+name+" "))
	}
	return clipLine(strings.Join(parts, "│"), m.width)
}

func (m model) editorView() string {
	t := m.tabMgr.Active()
	if t == nil {
		return ""
	}
	h := m.editorHeight()
	t.Buf.SetVisibleHeight(h)

	var body string
	if m.editMode {
		body = m.editBody(t.Buf.Lines(), t.Buf.Scroll(), h)
	} else {
		body = m.viewBody(t.Name, t.Path, t.Buf.Lines(), t.Buf.Scroll(), h)
	}

	title := " " + t.Name + " "
	border := Vitesse.Yellow
	if m.editMode {
		title = " " + t.Name + " (EDITING) "
		border = Vitesse.Cyan
		if t.Dirty() {
			title = " " + t.Name + " (EDITING · UNSAVED) "
			border = Vitesse.Red
		}
	}
	head := lipgloss.NewStyle().Bold(true).Foreground(border).Render(title)
	box := PanelBorder(border).Width(m.width - 2).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, head, box, m.editorInfoLine())
}

// editBody shows raw text with a block cursor overlay.
func (m model) editBody(lines []string, scroll, h int) string {
	cursorLine, cursorCol := 0, 0
	if t := m.tabMgr.Active(); t != nil {
		cursorLine, cursorCol = t.Buf.Cursor()
	}
	end := scroll + h
	if end > len(lines) {
		end = len(lines)
	}
	cursor := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Render("█")

	var out []string
	for i := scroll; i < end; i++ {
		line := lines[i]
		if i == cursorLine && m.blinkOn {
			r := []rune(line)
			if cursorCol > len(r) {
				cursorCol = len(r)
			}
			line = string(r[:cursorCol]) + cursor + string(r[cursorCol:])
		}
		out = append(out, clipLine(line, m.width-4))
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return strings.Join(out, "\n")
}

// viewBody shows syntax-highlighted text; markdown renders via glamour.
func (m model) viewBody(name, path string, lines []string, scroll, h int) string {
	if strings.HasSuffix(strings.ToLower(name), ".md") {
		return m.markdownBody(path, lines, scroll, h)
	}
	end := scroll + h
	if end > len(lines) {
		end = len(lines)
	}
	var out []string
	for i := scroll; i < end; i++ {
		out = append(out, clipLine(m.highlightLine(name, lines[i]), m.width-4))
	}
	if len(out) == 0 {
		out = []string{MutedText().Render("(empty file)")}
	}
	return strings.Join(out, "\n")
}

func (m model) highlightLine(name, line string) string {
	var b strings.Builder
	for _, sp := range highlight.Line(name, line) {
		st := lipgloss.NewStyle()
		if sp.Color != "" {
			st = st.Foreground(lipgloss.Color(sp.Color))
		}
		if sp.Bold {
			st = st.Bold(true)
		}
		if sp.Italic {
			st = st.Italic(true)
		}
		if sp.Underline {
			st = st.Underline(true)
		}
		b.WriteString(st.Render(sp.Text))
	}
	return b.String()
}

// markdownBody renders markdown once per path and caches the result; the
// scroll window slices the rendered lines.
func (m model) markdownBody(path string, lines []string, scroll, h int) string {
	rendered, ok := m.mdCache[path]
	if !ok {
		var err error
		rendered, err = highlight.Markdown(strings.Join(lines, "\n"), m.width-6)
		if err != nil {
			rendered = strings.Join(lines, "\n")
		}
		m.mdCache[path] = rendered
	}
	rls := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if scroll > len(rls)-1 {
		scroll = len(rls) - 1
	}
	end := scroll + h
	if end > len(rls) {
		end = len(rls)
	}
	return strings.Join(rls[scroll:end], "\n")
}

func (m model) editorInfoLine() string {
	tab := m.tabMgr.Active()
	if tab == nil {
		return ""
	}
	line, col := tab.Buf.Cursor()
	total := tab.Buf.LineCount()
	scroll := tab.Buf.Scroll()
	mode := "VIEW: ↑↓ scroll · e edit · esc back"
	if m.editMode {
		mode = "EDIT: type to insert · ctrl+s save · esc view"
	}
	info := fmt.Sprintf("Lines %d-%d of %d │ %s │ %d:%d",
		scroll+1, minInt(scroll+tab.Buf.VisibleHeight(), total), total, mode, line+1, col+1)
	return MutedText().Render(clipLine(" "+info, m.width))
}

func (m model) terminalView() string {
	lines, input := m.sess.Snapshot(term.Rows)
	var out []string
	for _, ln := range lines {
		// No VT emulation: strip escape sequences before display.
		out = append(out, clipLine(xansi.Strip(strings.TrimRight(ln, "\r")), m.width-4))
	}
	prompt := "$ " + input
	if m.focus == focusTerminal && m.blinkOn {
		prompt += "█"
	}
	out = append(out, clipLine(prompt, m.width-4))

	title := " Terminal (ctrl+t to close) "
	if m.sess.Degraded() {
		title = " Terminal · echo mode (ctrl+t to close) "
	}
	border := Vitesse.Primary
	if m.focus != focusTerminal {
		border = Vitesse.Border
	}
	box := PanelBorder(border).Width(m.width - 2).Render(strings.Join(out, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, AccentBold().Render(title), box)
}

func (m model) statusBarView() string {
	left := " " + m.hintText()
	if m.notice != "" {
		left = " " + m.notice
	}

	var segs []string
	if m.focus == focusBrowser && m.selected >= 0 && m.selected < len(m.visible) {
		if rel := browser.RelTime(m.visible[m.selected].ModTime); rel != "" {
			segs = append(segs, "modified "+rel)
		}
	}
	if m.tabMgr.HasTabs() {
		segs = append(segs, IconTabs()+" "+m.tabMgr.Info())
	}
	if m.git.InRepo {
		g := IconBranch() + " " + m.git.Branch
		if m.git.ShortSHA != "" {
			g += " " + m.git.ShortSHA
		}
		if m.git.Dirty {
			g += " " + IconDirty()
		}
		segs = append(segs, g)
	}
	segs = append(segs, m.now.Format("15:04:05"))
	right := strings.Join(segs, " │ ") + " "

	return renderStatusBar(m.width, left, right)
}

func (m model) hintText() string {
	switch {
	case m.focus == focusTerminal:
		return "terminal active · type commands, enter to run · ctrl+t close"
	case m.focus == focusEditor && m.editMode:
		return "editing · ctrl+s save · ctrl+w close tab · esc view mode"
	case m.focus == focusEditor:
		return "viewing · e edit · tab cycle tabs · esc browser"
	default:
		return "h help · ↑↓ navigate · enter open · / filter · ctrl+t terminal · q quit"
	}
}

func (m model) helpView() string {
	return PanelBorder(Vitesse.Primary).Render(strings.Join(helpLines(), "\n"))
}

func (m model) alertView() string {
	name := "unknown"
	if idx, ok := m.tabMgr.Pending(); ok {
		if t, err := m.tabMgr.Tab(idx); err == nil {
			name = t.Name
		}
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Red).Render("Close tab with unsaved changes?"),
		"",
		"Tab: " + name,
		"",
		"This tab has unsaved changes that will be lost.",
		"",
		"  S · save and close",
		"  D · discard changes and close",
		"  C · cancel",
	}
	return PanelBorder(Vitesse.Red).Render(strings.Join(lines, "\n"))
}

// overlay centers popup over the content area.
func (m model) overlay(content, popup string) string {
	h := lipgloss.Height(content)
	if h < lipgloss.Height(popup) {
		h = lipgloss.Height(popup)
	}
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, popup)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
