package board

import "github.com/charmbracelet/bubbles/v2/key"

type keyMap struct {
	Regenerate key.Binding
	LevelUp    key.Binding
	LevelDown  key.Binding
	Dark       key.Binding
	Export     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
		LevelUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "level up")),
		LevelDown:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "level down")),
		Dark:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.LevelUp, k.LevelDown, k.Dark, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.LevelUp, k.LevelDown},
		{k.Dark, k.Export},
		{k.Help, k.Quit},
	}
}
