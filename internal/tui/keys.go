package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	DrawName   key.Binding
	DrawGroup  key.Binding
	ResetName  key.Binding
	ResetGroup key.Binding
	ModeName   key.Binding
	ModeGroup  key.Binding
	Eggs       key.Binding
	Voice      key.Binding
	Leave      key.Binding
	Test       key.Binding
	Reseed     key.Binding
	Reload     key.Binding
	Dismiss    key.Binding
	Save       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	Quit       key.Binding
	ToggleHelp key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		DrawName:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "draw name")),
		DrawGroup:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "draw group")),
		ResetName:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset names")),
		ResetGroup: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset groups")),
		ModeName:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "name mode")),
		ModeGroup:  key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "group mode")),
		Eggs:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "eggs")),
		Voice:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "voice")),
		Leave:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "leave list")),
		Test:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "test mode")),
		Reseed:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "reseed")),
		Reload:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload config")),
		Dismiss:    key.NewBinding(key.WithKeys("esc", " ", "enter"), key.WithHelp("space", "close result")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "preview")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ToggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DrawName, k.DrawGroup, k.Leave, k.Test, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DrawName, k.DrawGroup, k.ResetName, k.ResetGroup},
		{k.ModeName, k.ModeGroup, k.Eggs, k.Voice},
		{k.Leave, k.Test, k.Reseed, k.Reload},
		{k.Dismiss, k.ToggleHelp, k.Quit},
	}
}
