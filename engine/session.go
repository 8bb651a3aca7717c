package engine

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/event"
	"github.com/lixenwraith/verb-runner/parameter"
	"github.com/lixenwraith/verb-runner/vocab"
)

// RaceState holds the two position trackers
// Speeds and the finish distance live in Session.Params
type RaceState struct {
	PlayerDistance  float64
	PursuerDistance float64

	// ScrollOffset drives the ground texture, decreasing while PLAYING
	ScrollOffset float64
}

// PromptState is the single in-flight quiz question
// Verb, Pronoun and Expected are set iff Active
type PromptState struct {
	Active   bool
	Elapsed  float64 // Idle time since the last prompt cleared
	Verb     string
	Pronoun  string
	Display  string
	Expected string

	// InputLocked is set during the feedback delay after a submission
	InputLocked bool
}

// Session is the owned aggregate of phase, race and prompt state
// All mutation happens on the caller's goroutine; Session is not safe for concurrent use
type Session struct {
	Params   parameter.Race
	Phase    core.Phase
	Race     RaceState
	Prompt   PromptState
	Viewport float64 // Viewport width in distance units

	vocab  *vocab.Table
	rng    *rand.Rand
	logger *zap.Logger

	// generation is bumped on every start; deferred actions carry the value they were scheduled under
	generation uint64
	ticks      uint64
	pending    []deferredAction

	out []event.GameEvent
}

// NewSession creates a session in the START phase with the first-load player position
// A nil rng selects a randomly seeded PCG source
func NewSession(params parameter.Race, table *vocab.Table, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Session{
		Params: params,
		Phase:  core.PhaseStart,
		Race: RaceState{
			PlayerDistance:  params.PlayerFirstLoadDistance,
			PursuerDistance: params.PursuerStartDistance,
		},
		Viewport: parameter.DefaultViewportWidth,
		vocab:    table,
		rng:      rng,
		logger:   zap.NewNop(),
	}
}

// SetLogger replaces the no-op logger
func (s *Session) SetLogger(logger *zap.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Generation returns the current session generation
func (s *Session) Generation() uint64 {
	return s.generation
}

// Ticks returns the number of Step calls
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// SetViewport updates the viewport width used by derived visuals
// Non-positive widths are ignored
func (s *Session) SetViewport(width float64) {
	if width > 0 {
		s.Viewport = width
	}
}

// Visuals derives the current placement for the active viewport
func (s *Session) Visuals() core.Visuals {
	return DeriveVisuals(s.Params, s.Race, s.Viewport)
}

func (s *Session) emit(t event.EventType, payload any) {
	s.out = append(s.out, event.GameEvent{
		Type:       t,
		Payload:    payload,
		Generation: s.generation,
		Tick:       s.ticks,
	})
}

// flush returns and clears the events emitted since the last flush
func (s *Session) flush() []event.GameEvent {
	out := s.out
	s.out = nil
	return out
}
