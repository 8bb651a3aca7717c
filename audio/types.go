package audio

// Cue identifies a one-shot sound effect
type Cue int

const (
	CueAccepted Cue = iota // bell
	CueRejected            // buzz
	CueWon                 // two-note chime
	CueLost                // low rumble
	cueCount
)

var cueNames = [cueCount]string{"accepted", "rejected", "won", "lost"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Player plays cues; SoundManager is the speaker-backed implementation
type Player interface {
	Play(cue Cue)
}
