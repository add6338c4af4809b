package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the set of bindings shown in the help bar.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Search   key.Binding
	Reload   key.Binding
	Theme    key.Binding
	Color    key.Binding
	Save     key.Binding
	Rerun    key.Binding
	ReadAll  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NextPage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Color:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save report")),
		Rerun:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new analysis")),
		ReadAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "mark all read")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Select, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.Back},
		{k.NextPage, k.PrevPage, k.Search, k.Reload},
		{k.Theme, k.Color, k.Save, k.Rerun, k.ReadAll},
		{k.Help, k.Quit},
	}
}
