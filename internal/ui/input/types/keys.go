package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the transfer list
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	SwitchSide  key.Binding
	Left        key.Binding
	Right       key.Binding
	Toggle      key.Binding
	SelectAll   key.Binding
	Deselect    key.Binding
	Transfer    key.Binding
	TransferAll key.Binding
	Search      key.Binding
	Summary     key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		SwitchSide:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch list")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left list")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right list")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
		SelectAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "check all")),
		Deselect:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "uncheck all")),
		Transfer:    key.NewBinding(key.WithKeys("enter", "t"), key.WithHelp("enter", "transfer")),
		TransferAll: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "transfer all")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Summary:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summary")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy value")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchSide, k.Toggle, k.Transfer, k.TransferAll, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.SwitchSide, k.Left, k.Right},
		{k.Toggle, k.SelectAll, k.Deselect},
		{k.Transfer, k.TransferAll, k.Search},
		{k.Summary, k.Copy, k.Help, k.Quit},
	}
}
