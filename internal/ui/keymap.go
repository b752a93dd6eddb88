package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap collects the bindings dispatched in Update. Typed runes (editor
// insertion, terminal input) are handled directly from the key message.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Quit     key.Binding
	Help     key.Binding
	Hidden   key.Binding
	Filter   key.Binding
	Terminal key.Binding
	SaveAll  key.Binding

	NextTab  key.Binding
	PrevTab  key.Binding
	Save     key.Binding
	CloseTab key.Binding
	Edit     key.Binding
	Back     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Hidden:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "hidden files")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Terminal: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "terminal")),
		SaveAll:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save all")),

		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		CloseTab: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close tab")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit mode")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// helpLines is the content of the help overlay.
func helpLines() []string {
	return []string{
		"File Browser Help",
		"",
		"Navigation:",
		"  ↑/k ↓/j   move selection",
		"  enter     enter directory or open file",
		"  /         fuzzy filter the listing",
		"  a         toggle hidden files",
		"  h         toggle this help",
		"  ctrl+t    toggle integrated terminal",
		"  q         quit",
		"",
		"Editor (open files become tabs):",
		"  tab / shift+tab   cycle tabs",
		"  e                 toggle edit mode",
		"  ↑↓←→              move cursor (edit) / scroll (view)",
		"  ctrl+s            save active tab",
		"  ctrl+w            close tab (asks when unsaved)",
		"  esc               back to browser",
		"",
		"Terminal:",
		"  type and press enter to run commands",
		"  ctrl+c sends an interrupt to the shell",
		"  ctrl+t closes the terminal",
	}
}
