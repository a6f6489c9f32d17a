package session

// Mode is the session's current interaction mode. Exactly one mode is
// active at any time.
type Mode int

const (
	// ModeBrowsing listens to the current track and accumulates taps.
	ModeBrowsing Mode = iota

	// ModeReviewing holds a candidate BPM awaiting user confirmation.
	ModeReviewing

	// ModeManualEntry accumulates a BPM digit by digit, overriding the
	// tap estimate.
	ModeManualEntry
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeReviewing:
		return "reviewing"
	case ModeManualEntry:
		return "manual"
	default:
		return "unknown"
	}
}

// CommandKind enumerates everything the user can ask the session to do.
// Each mode understands a disjoint subset; the controller ignores
// commands that don't belong to the active mode.
type CommandKind int

const (
	// Browsing commands.
	CmdTap CommandKind = iota
	CmdConfirm
	CmdRestart
	CmdNext
	CmdPrev
	CmdEnterManual
	CmdQuit

	// Reviewing commands.
	CmdYes
	CmdNo

	// Manual entry commands. CmdConfirm and the shared CmdCancel round
	// out the vocabulary.
	CmdDigit
	CmdBackspace
	CmdCancel
)

// Command is one user intent, produced by the input mapper and consumed
// by the controller. Digit carries the value for CmdDigit.
type Command struct {
	Kind  CommandKind
	Digit uint
}
