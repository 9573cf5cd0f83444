package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Login   key.Binding
	Signup  key.Binding
	Logout  key.Binding
	Diary   key.Binding
	Insight key.Binding
	Weekly  key.Binding
	Help    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Login: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "log in"),
	),
	Signup: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sign up"),
	),
	Logout: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "log out"),
	),
	Diary: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "write diary"),
	),
	Insight: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "insights"),
	),
	Weekly: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "weekly report"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Diary, k.Insight, k.Weekly, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Login, k.Signup, k.Logout},
		{k.Diary, k.Insight, k.Weekly},
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}
