package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/verb-runner/core"
)

type actionKind uint8

const (
	actionClearPrompt actionKind = iota
	actionRetryPrompt
)

func (k actionKind) String() string {
	if k == actionClearPrompt {
		return "clear-prompt"
	}
	return "retry-prompt"
}

// deferredAction is a one-shot action counted down in simulation time
type deferredAction struct {
	kind       actionKind
	remaining  float64
	generation uint64
}

// dueEpsilon absorbs float drift when several frame deltas sum to the delay
const dueEpsilon = 1e-9

func (s *Session) schedule(kind actionKind) {
	s.pending = append(s.pending, deferredAction{
		kind:       kind,
		remaining:  s.Params.FeedbackDelay,
		generation: s.generation,
	})
}

// runDeferred counts down pending actions and fires the due ones in schedule order
func (s *Session) runDeferred(dt float64) {
	if len(s.pending) == 0 {
		return
	}

	var due []deferredAction
	kept := s.pending[:0]
	for _, a := range s.pending {
		a.remaining -= dt
		if a.remaining <= dueEpsilon {
			due = append(due, a)
		} else {
			kept = append(kept, a)
		}
	}
	s.pending = kept

	for _, a := range due {
		s.fire(a)
	}
}

// fire runs a due action unless it belongs to an older generation or the race is over
func (s *Session) fire(a deferredAction) {
	if a.generation != s.generation || s.Phase != core.PhasePlaying {
		s.logger.Debug("stale deferred action dropped",
			zap.Stringer("kind", a.kind),
			zap.Uint64("generation", a.generation),
			zap.Uint64("current", s.generation),
		)
		return
	}

	switch a.kind {
	case actionClearPrompt:
		s.clearPrompt()
	case actionRetryPrompt:
		s.retryPrompt()
	}
}
