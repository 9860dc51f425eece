package term

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit  key.Binding
	Pause key.Binding
	Step  key.Binding
	Reset key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
		Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
		Step:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "step")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
