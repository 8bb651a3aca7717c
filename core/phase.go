package core

// Phase is the process-wide game phase
type Phase uint8

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseWon:
		return "WON"
	case PhaseLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the phase ends a run and accepts a restart
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// CanStart reports whether a start/restart request is honored in this phase
func (p Phase) CanStart() bool {
	return p != PhasePlaying
}
