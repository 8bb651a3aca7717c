package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/event"
	"github.com/lixenwraith/verb-runner/parameter"
)

// phaseMessages returns the overlay text for a phase; PLAYING has none
func phaseMessages(p core.Phase) (title, subtitle string) {
	switch p {
	case core.PhaseStart:
		return parameter.TitleStart, parameter.SubtitleStart
	case core.PhaseWon:
		return parameter.TitleWon, parameter.SubtitleWon
	case core.PhaseLost:
		return parameter.TitleLost, parameter.SubtitleLost
	default:
		return "", ""
	}
}

// Start begins a new run from START, WON or LOST
// Bumps the generation so feedback actions from the previous run never fire
// Returns nil if a run is already in progress
func (s *Session) Start() []event.GameEvent {
	if !s.Phase.CanStart() {
		return nil
	}

	s.generation++
	s.pending = nil
	s.Reset()
	s.ResetTimer()

	s.emit(event.EventPhaseChanged, &event.PhasePayload{Phase: core.PhasePlaying})
	s.emit(event.EventPromptHidden, nil)
	s.emit(event.EventVisualsUpdated, &event.VisualsPayload{Visuals: s.Visuals()})

	s.logger.Info("race started", zap.Uint64("generation", s.generation))
	return s.flush()
}

// Step advances the session by elapsed seconds
// Order: due feedback actions, race tick, prompt timer, visuals
// Visuals are emitted only while PLAYING or on the step that ended the race
func (s *Session) Step(elapsed float64) []event.GameEvent {
	if elapsed < 0 {
		elapsed = 0
	}
	s.ticks++

	if s.Phase != core.PhasePlaying {
		return s.flush()
	}

	s.runDeferred(elapsed)
	s.Tick(elapsed)
	if s.Phase == core.PhasePlaying {
		s.AdvanceTimer(elapsed)
	}
	s.emit(event.EventVisualsUpdated, &event.VisualsPayload{Visuals: s.Visuals()})

	return s.flush()
}

// Submit routes a submitted answer into the quiz
func (s *Session) Submit(raw string) []event.GameEvent {
	s.SubmitAnswer(raw)
	return s.flush()
}

// Intro returns the events describing the current pre-start screen
func (s *Session) Intro() []event.GameEvent {
	title, subtitle := phaseMessages(s.Phase)
	s.emit(event.EventPhaseChanged, &event.PhasePayload{Phase: s.Phase, Title: title, Subtitle: subtitle})
	s.emit(event.EventVisualsUpdated, &event.VisualsPayload{Visuals: s.Visuals()})
	return s.flush()
}

// Resize updates the viewport and reports fresh visuals so a frozen screen re-lays out
func (s *Session) Resize(width float64) []event.GameEvent {
	s.SetViewport(width)
	s.emit(event.EventVisualsUpdated, &event.VisualsPayload{Visuals: s.Visuals()})
	return s.flush()
}
