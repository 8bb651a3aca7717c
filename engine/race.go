package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/event"
)

// Reset places both runners at their start positions and enters PLAYING
func (s *Session) Reset() {
	s.Race = RaceState{
		PlayerDistance:  s.Params.PlayerStartDistance,
		PursuerDistance: s.Params.PursuerStartDistance,
	}
	s.Phase = core.PhasePlaying
}

// Tick advances both runners by their fixed speeds and evaluates termination
// Capture is checked before the finish so a simultaneous crossing is a loss
func (s *Session) Tick(dt float64) {
	if s.Phase != core.PhasePlaying || dt < 0 {
		return
	}

	s.Race.PlayerDistance += s.Params.PlayerSpeed * dt
	s.Race.PursuerDistance += s.Params.PursuerSpeed * dt
	s.Race.ScrollOffset -= s.Params.PlayerSpeed * s.Params.BackgroundScrollFactor * dt

	switch {
	case s.Race.PursuerDistance >= s.Race.PlayerDistance:
		s.finish(core.PhaseLost)
	case s.Race.PlayerDistance >= s.Params.TotalDistance:
		s.finish(core.PhaseWon)
	}
}

// ApplyBoost moves the player forward; ignored outside PLAYING
func (s *Session) ApplyBoost(amount float64) {
	if s.Phase != core.PhasePlaying || amount <= 0 {
		return
	}
	s.Race.PlayerDistance += amount
}

// ApplyPenalty moves the pursuer forward; ignored outside PLAYING
func (s *Session) ApplyPenalty(amount float64) {
	if s.Phase != core.PhasePlaying || amount <= 0 {
		return
	}
	s.Race.PursuerDistance += amount
}

// finish freezes the race in a terminal phase and retires the prompt
func (s *Session) finish(phase core.Phase) {
	s.Phase = phase
	s.pending = nil
	s.Prompt = PromptState{}

	title, subtitle := phaseMessages(phase)
	s.emit(event.EventPhaseChanged, &event.PhasePayload{Phase: phase, Title: title, Subtitle: subtitle})
	s.emit(event.EventPromptHidden, nil)

	s.logger.Info("race finished",
		zap.Stringer("phase", phase),
		zap.Float64("player", s.Race.PlayerDistance),
		zap.Float64("pursuer", s.Race.PursuerDistance),
		zap.Uint64("generation", s.generation),
	)
}
