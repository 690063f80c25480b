package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Click      key.Binding
	Input      key.Binding
	NewGame    key.Binding
	ToggleAI   key.Binding
	Difficulty key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Click:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select/move")),
		Input:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "type move")),
		NewGame:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		ToggleAI:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "computer on/off")),
		Difficulty: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Input, k.NewGame, k.ToggleAI, k.Difficulty, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		k.ShortHelp(),
	}
}
