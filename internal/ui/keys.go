package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for navigation mode.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
	PrevCategory key.Binding
	NextCategory key.Binding
	Select       key.Binding
	Back         key.Binding
	Favorite     key.Binding
	Queue        key.Binding
	Delete       key.Binding
	Clear        key.Binding
	MorePerPage  key.Binding
	LessPerPage  key.Binding
	NextScreen   key.Binding
	PrevScreen   key.Binding
	Quit         key.Binding
	Help         key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next page"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "prev category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next category"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		Queue: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shortlist"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear all"),
		),
		MorePerPage: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more per page"),
		),
		LessPerPage: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer per page"),
		),
		NextScreen: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next screen"),
		),
		PrevScreen: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev screen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
