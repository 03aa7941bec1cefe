package teaui

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Reload key.Binding
	Open   key.Binding
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "current month")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer while browsing.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Reload, k.Open, k.Quit}
}

func (k keyMap) promptHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
