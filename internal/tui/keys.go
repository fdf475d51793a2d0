package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	QuitLetter key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding

	// Convert tab
	Refresh  key.Binding
	Swap     key.Binding
	NextFrom key.Binding
	PrevFrom key.Binding
	NextTo   key.Binding
	PrevTo   key.Binding

	// Help bot tab
	Send key.Binding

	// Settings tab
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		QuitLetter: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),

		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh rates")),
		Swap:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "swap")),
		NextFrom: key.NewBinding(key.WithKeys("f"), key.WithHelp("f/F", "from")),
		PrevFrom: key.NewBinding(key.WithKeys("F")),
		NextTo:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t/T", "to")),
		PrevTo:   key.NewBinding(key.WithKeys("T")),

		Send: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),

		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	}
}

// footerBindings lists the hints shown for the active tab.
func (k keyMap) footerBindings(active tab, confirming bool) []key.Binding {
	switch active {
	case tabConvert:
		return []key.Binding{k.NextFrom, k.NextTo, k.Swap, k.Refresh, k.NextTab, k.QuitLetter}
	case tabHelpBot:
		return []key.Binding{k.Send, k.NextTab, k.Quit}
	case tabSettings:
		if confirming {
			return []key.Binding{k.Confirm, k.Cancel}
		}
		return []key.Binding{k.Up, k.Down, k.Toggle, k.NextTab, k.QuitLetter}
	}
	return nil
}
