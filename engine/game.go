package engine

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/event"
	"github.com/lixenwraith/verb-runner/status"
)

// Game binds a Session to the frame clock, the outbound event queue and the metrics registry
// Every method runs on the frame loop goroutine
type Game struct {
	session   *Session
	queue     *event.EventQueue
	clock     *FrameClock
	logger    *zap.Logger
	cellUnits float64

	// Cached metric pointers
	statTicks   *atomic.Int64
	statPrompts *atomic.Int64
	statCorrect *atomic.Int64
	statWrong   *atomic.Int64
	statGap     *status.AtomicFloat
	statPhase   *status.AtomicString
}

// NewGame wires the session and publishes the title screen
// cellUnits is the distance covered by one terminal column
func NewGame(session *Session, queue *event.EventQueue, clock *FrameClock, reg *status.Registry, logger *zap.Logger, cellUnits float64) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	session.SetLogger(logger)

	g := &Game{
		session:     session,
		queue:       queue,
		clock:       clock,
		logger:      logger,
		cellUnits:   cellUnits,
		statTicks:   reg.Ints.Get("engine.ticks"),
		statPrompts: reg.Ints.Get("quiz.prompts"),
		statCorrect: reg.Ints.Get("quiz.correct"),
		statWrong:   reg.Ints.Get("quiz.wrong"),
		statGap:     reg.Floats.Get("race.gap"),
		statPhase:   reg.Strings.Get("game.phase"),
	}
	g.publish(session.Intro())
	return g
}

// RequestStart starts or restarts the race; returns false while a race is running
func (g *Game) RequestStart() bool {
	evs := g.session.Start()
	if evs == nil {
		return false
	}
	g.clock.Reset()
	g.publish(evs)
	return true
}

// Submit forwards a typed answer
func (g *Game) Submit(text string) {
	g.publish(g.session.Submit(text))
}

// Frame advances the simulation by the time since the previous frame
func (g *Game) Frame() {
	g.publish(g.session.Step(g.clock.Delta()))
}

// Resize converts a terminal width in columns into the viewport width
func (g *Game) Resize(columns int) {
	if columns <= 0 {
		return
	}
	g.publish(g.session.Resize(float64(columns) * g.cellUnits))
	g.logger.Debug("viewport resized", zap.Int("columns", columns), zap.Float64("width", g.session.Viewport))
}

// Phase returns the current game phase
func (g *Game) Phase() core.Phase {
	return g.session.Phase
}

// Session exposes the underlying session for inspection
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) publish(evs []event.GameEvent) {
	for _, ev := range evs {
		switch ev.Type {
		case event.EventPromptShown:
			g.statPrompts.Add(1)
		case event.EventAnswerAccepted:
			g.statCorrect.Add(1)
		case event.EventAnswerRejected:
			g.statWrong.Add(1)
		case event.EventPhaseChanged:
			if p, ok := ev.Payload.(*event.PhasePayload); ok {
				g.statPhase.Store(p.Phase.String())
			}
		}
	}

	g.statTicks.Store(int64(g.session.Ticks()))
	g.statGap.Set(g.session.Race.PlayerDistance - g.session.Race.PursuerDistance)
	g.queue.PushAll(evs)
}
