package session

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// BrowsingKeyMap holds the key bindings active while listening to a
// track.
type BrowsingKeyMap struct {
	Tap      key.Binding
	Confirm  key.Binding
	Restart  key.Binding
	Previous key.Binding
	Next     key.Binding
	Manual   key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k BrowsingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Confirm, k.Restart, k.Previous, k.Next, k.Manual, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k BrowsingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Confirm, k.Restart},
		{k.Previous, k.Next, k.Manual, k.Quit},
	}
}

// ReviewingKeyMap holds the key bindings of the confirmation popup.
type ReviewingKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ReviewingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

// FullHelp implements help.KeyMap.
func (k ReviewingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No}}
}

// ManualKeyMap holds the key bindings of the manual BPM entry overlay.
// Digits are handled separately from the named bindings.
type ManualKeyMap struct {
	Confirm   key.Binding
	Backspace key.Binding
	Cancel    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ManualKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Backspace, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k ManualKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Backspace, k.Cancel}}
}

// KeyMap bundles the per-mode key vocabularies.
type KeyMap struct {
	Browsing  BrowsingKeyMap
	Reviewing ReviewingKeyMap
	Manual    ManualKeyMap
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Browsing: BrowsingKeyMap{
			Tap:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "tap")),
			Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
			Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
			Previous: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
			Next:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
			Manual:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "manual entry")),
			Quit:     key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "quit")),
		},
		Reviewing: ReviewingKeyMap{
			Yes: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
			No:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		},
		Manual: ManualKeyMap{
			Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
			Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete digit")),
			Cancel:    key.NewBinding(key.WithKeys("esc", "m"), key.WithHelp("esc/m", "cancel")),
		},
	}
}

// MapKey translates a raw key event into the command it means in the
// given mode.
//
// The mapping is pure and stateless. Keys carrying a modifier are
// always rejected so a stray alt-tap doesn't trigger anything, and
// unrecognized keys map to nothing rather than an error.
func (k KeyMap) MapKey(mode Mode, msg tea.KeyMsg) (Command, bool) {
	if msg.Alt {
		return Command{}, false
	}

	switch mode {
	case ModeBrowsing:
		switch {
		case key.Matches(msg, k.Browsing.Tap):
			return Command{Kind: CmdTap}, true
		case key.Matches(msg, k.Browsing.Confirm):
			return Command{Kind: CmdConfirm}, true
		case key.Matches(msg, k.Browsing.Restart):
			return Command{Kind: CmdRestart}, true
		case key.Matches(msg, k.Browsing.Previous):
			return Command{Kind: CmdPrev}, true
		case key.Matches(msg, k.Browsing.Next):
			return Command{Kind: CmdNext}, true
		case key.Matches(msg, k.Browsing.Manual):
			return Command{Kind: CmdEnterManual}, true
		case key.Matches(msg, k.Browsing.Quit):
			return Command{Kind: CmdQuit}, true
		}

	case ModeReviewing:
		switch {
		case key.Matches(msg, k.Reviewing.Yes):
			return Command{Kind: CmdYes}, true
		case key.Matches(msg, k.Reviewing.No):
			return Command{Kind: CmdNo}, true
		}

	case ModeManualEntry:
		if d, ok := digitOf(msg); ok {
			return Command{Kind: CmdDigit, Digit: d}, true
		}
		switch {
		case key.Matches(msg, k.Manual.Confirm):
			return Command{Kind: CmdConfirm}, true
		case key.Matches(msg, k.Manual.Backspace):
			return Command{Kind: CmdBackspace}, true
		case key.Matches(msg, k.Manual.Cancel):
			return Command{Kind: CmdCancel}, true
		}
	}

	return Command{}, false
}

func digitOf(msg tea.KeyMsg) (uint, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return 0, false
	}
	return uint(r - '0'), true
}
