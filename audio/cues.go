package audio

import (
	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/event"
)

// Cues translates outbound game events into sound cues
type Cues struct {
	player Player
}

func NewCues(player Player) *Cues {
	return &Cues{player: player}
}

func (c *Cues) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAnswerAccepted,
		event.EventAnswerRejected,
		event.EventPhaseChanged,
	}
}

func (c *Cues) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventAnswerAccepted:
		c.player.Play(CueAccepted)
	case event.EventAnswerRejected:
		c.player.Play(CueRejected)
	case event.EventPhaseChanged:
		p, ok := ev.Payload.(*event.PhasePayload)
		if !ok {
			return
		}
		switch p.Phase {
		case core.PhaseWon:
			c.player.Play(CueWon)
		case core.PhaseLost:
			c.player.Play(CueLost)
		}
	}
}
