package engine

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/event"
	"github.com/lixenwraith/verb-runner/parameter"
	"github.com/lixenwraith/verb-runner/vocab"
	"pgregory.net/rapid"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(parameter.DefaultRace(), vocab.MustDefault(), rand.New(rand.NewPCG(7, 11)))
}

// startedWithPrompt returns a running session with an open prompt at the given positions
func startedWithPrompt(t *testing.T, player, pursuer float64) *Session {
	t.Helper()
	s := newTestSession(t)
	s.Start()
	s.Step(0.01)
	if !s.Prompt.Active {
		t.Fatal("Expected prompt after first step")
	}
	s.Race.PlayerDistance = player
	s.Race.PursuerDistance = pursuer
	return s
}

func countType(evs []event.GameEvent, typ event.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func TestNewSessionTitleScreen(t *testing.T) {
	s := newTestSession(t)

	if s.Phase != core.PhaseStart {
		t.Errorf("Expected START, got %v", s.Phase)
	}
	if s.Race.PlayerDistance != parameter.PlayerFirstLoadDistance {
		t.Errorf("Expected first-load distance %v, got %v", parameter.PlayerFirstLoadDistance, s.Race.PlayerDistance)
	}

	evs := s.Intro()
	if len(evs) != 2 || evs[0].Type != event.EventPhaseChanged {
		t.Fatalf("Unexpected intro events: %+v", evs)
	}
	p := evs[0].Payload.(*event.PhasePayload)
	if p.Title != parameter.TitleStart || p.Subtitle != parameter.SubtitleStart {
		t.Errorf("Unexpected title %q / %q", p.Title, p.Subtitle)
	}
}

func TestStartResetsRace(t *testing.T) {
	s := newTestSession(t)
	evs := s.Start()

	if s.Phase != core.PhasePlaying {
		t.Fatalf("Expected PLAYING, got %v", s.Phase)
	}
	if s.Race.PlayerDistance != 500 || s.Race.PursuerDistance != 0 || s.Race.ScrollOffset != 0 {
		t.Errorf("Unexpected start race state %+v", s.Race)
	}
	if s.Prompt.Active || s.Prompt.Elapsed != parameter.PromptInterval {
		t.Errorf("Expected idle timer preloaded, got %+v", s.Prompt)
	}
	if s.Generation() != 1 {
		t.Errorf("Expected generation 1, got %d", s.Generation())
	}
	if countType(evs, event.EventPhaseChanged) != 1 || countType(evs, event.EventVisualsUpdated) != 1 {
		t.Errorf("Unexpected start events %+v", evs)
	}

	if again := s.Start(); again != nil {
		t.Errorf("Expected start ignored while PLAYING, got %d events", len(again))
	}
}

func TestTickLinear(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	s.Race = RaceState{PlayerDistance: 1000, PursuerDistance: 900}

	s.Tick(0.5)

	if s.Race.PlayerDistance != 1035 {
		t.Errorf("Expected player 1035, got %v", s.Race.PlayerDistance)
	}
	if s.Race.PursuerDistance != 950 {
		t.Errorf("Expected pursuer 950, got %v", s.Race.PursuerDistance)
	}
	if s.Race.ScrollOffset != -70 {
		t.Errorf("Expected scroll offset -70, got %v", s.Race.ScrollOffset)
	}
	if s.Phase != core.PhasePlaying {
		t.Errorf("Expected PLAYING, got %v", s.Phase)
	}
}

func TestTickLinearProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		params := parameter.DefaultRace()
		s := NewSession(params, vocab.MustDefault(), rand.New(rand.NewPCG(1, 2)))
		s.Start()

		player := rapid.Float64Range(0, 5000).Draw(t, "player")
		pursuer := rapid.Float64Range(0, player).Draw(t, "pursuer")
		dt := rapid.Float64Range(0, 5).Draw(t, "dt")
		s.Race.PlayerDistance, s.Race.PursuerDistance = player, pursuer

		s.Tick(dt)

		if math.Abs(s.Race.PlayerDistance-(player+params.PlayerSpeed*dt)) > 1e-9 {
			t.Fatalf("player advanced to %v from %v over %v", s.Race.PlayerDistance, player, dt)
		}
		if math.Abs(s.Race.PursuerDistance-(pursuer+params.PursuerSpeed*dt)) > 1e-9 {
			t.Fatalf("pursuer advanced to %v from %v over %v", s.Race.PursuerDistance, pursuer, dt)
		}
	})
}

func TestTickIgnoredOutsidePlaying(t *testing.T) {
	s := newTestSession(t)
	before := s.Race

	s.Tick(1)
	s.ApplyBoost(150)
	s.ApplyPenalty(50)

	if s.Race != before {
		t.Errorf("Expected frozen race in START, got %+v", s.Race)
	}
	if evs := s.Step(1); len(evs) != 0 {
		t.Errorf("Expected no events in START, got %+v", evs)
	}
}

func TestTickTermination(t *testing.T) {
	tests := []struct {
		name    string
		player  float64
		pursuer float64
		dt      float64
		want    core.Phase
		title   string
	}{
		{"catch", 1000, 990, 1, core.PhaseLost, parameter.TitleLost},
		{"finish", 2990, 0, 1, core.PhaseWon, parameter.TitleWon},
		{"catch at finish line", 2990, 2980, 1, core.PhaseLost, parameter.TitleLost},
		{"still running", 1000, 500, 1, core.PhasePlaying, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			s.Start()
			s.Race = RaceState{PlayerDistance: tt.player, PursuerDistance: tt.pursuer}

			s.Tick(tt.dt)
			evs := s.flush()

			if s.Phase != tt.want {
				t.Fatalf("Expected %v, got %v", tt.want, s.Phase)
			}
			if tt.want == core.PhasePlaying {
				return
			}
			if len(evs) != 2 || evs[1].Type != event.EventPromptHidden {
				t.Fatalf("Expected phase change then prompt hidden, got %+v", evs)
			}
			if p := evs[0].Payload.(*event.PhasePayload); p.Phase != tt.want || p.Title != tt.title {
				t.Errorf("Unexpected payload %+v", p)
			}
		})
	}
}

func TestCorrectAnswerPath(t *testing.T) {
	s := startedWithPrompt(t, 1000, 900)
	verb := s.Prompt.Verb

	evs := s.Submit(s.Prompt.Expected)

	if s.Race.PlayerDistance != 1150 || s.Race.PursuerDistance != 900 {
		t.Errorf("Expected 1150/900, got %+v", s.Race)
	}
	if countType(evs, event.EventAnswerAccepted) != 1 {
		t.Errorf("Expected accepted event, got %+v", evs)
	}
	if !s.Prompt.Active || !s.Prompt.InputLocked {
		t.Errorf("Expected prompt held during feedback delay, got %+v", s.Prompt)
	}

	evs = s.Step(0.25)
	if !s.Prompt.Active || s.Prompt.Verb != verb {
		t.Errorf("Expected prompt still shown mid-delay, got %+v", s.Prompt)
	}
	if countType(evs, event.EventPromptHidden) != 0 {
		t.Error("Prompt hidden too early")
	}

	evs = s.Step(0.25)
	if s.Prompt.Active {
		t.Errorf("Expected prompt cleared after delay, got %+v", s.Prompt)
	}
	if countType(evs, event.EventPromptHidden) != 1 {
		t.Errorf("Expected prompt hidden event, got %+v", evs)
	}
	if s.Prompt.Elapsed != 0.25 {
		t.Errorf("Expected idle timer restarted from zero, got %v", s.Prompt.Elapsed)
	}
}

func TestCorrectAnswerAccentInsensitive(t *testing.T) {
	s := startedWithPrompt(t, 1000, 900)
	s.Prompt.Expected = "habláis"

	for _, input := range []string{"hablais", "HABLAIS", "hablais "} {
		s.Prompt.InputLocked = false
		s.Race.PlayerDistance = 1000
		s.Submit(input)
		if s.Race.PlayerDistance != 1150 {
			t.Errorf("Expected %q accepted, player at %v", input, s.Race.PlayerDistance)
		}
	}
}

func TestIncorrectAnswerPath(t *testing.T) {
	s := startedWithPrompt(t, 1000, 900)
	before := s.Prompt

	evs := s.Submit("zzz")

	if s.Race.PlayerDistance != 1000 || s.Race.PursuerDistance != 950 {
		t.Errorf("Expected 1000/950, got %+v", s.Race)
	}
	if countType(evs, event.EventAnswerRejected) != 1 {
		t.Errorf("Expected rejected event, got %+v", evs)
	}

	// Locked during the delay
	if evs := s.Submit(before.Expected); len(evs) != 0 {
		t.Errorf("Expected submission ignored while locked, got %+v", evs)
	}

	s.Step(0.25)
	evs = s.Step(0.25)

	if countType(evs, event.EventInputReset) != 1 {
		t.Errorf("Expected input reset, got %+v", evs)
	}
	if !s.Prompt.Active || s.Prompt.InputLocked {
		t.Errorf("Expected open prompt after delay, got %+v", s.Prompt)
	}
	if s.Prompt.Verb != before.Verb || s.Prompt.Pronoun != before.Pronoun || s.Prompt.Expected != before.Expected {
		t.Errorf("Expected same prompt %+v, got %+v", before, s.Prompt)
	}
}

func TestSubmitWithoutPromptIgnored(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	if evs := s.Submit("hablo"); len(evs) != 0 {
		t.Errorf("Expected no events, got %+v", evs)
	}
	if s.Race.PlayerDistance != 500 || s.Race.PursuerDistance != 0 {
		t.Errorf("Race changed without prompt: %+v", s.Race)
	}
}

func TestPromptCadence(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	evs := s.Step(0.001)
	if countType(evs, event.EventPromptShown) != 1 {
		t.Fatalf("Expected immediate first prompt, got %+v", evs)
	}
	shown := evs[0].Payload.(*event.PromptPayload)
	if shown.Display != s.Prompt.Display || shown.Verb != s.Prompt.Verb {
		t.Errorf("Payload %+v does not match prompt %+v", shown, s.Prompt)
	}

	// Timer frozen while prompted
	s.Step(1)
	if s.Prompt.Elapsed != 0 {
		t.Errorf("Expected timer paused while prompted, got %v", s.Prompt.Elapsed)
	}

	s.Submit(s.Prompt.Expected)
	s.Step(0.5) // clears, then idles 0.5

	if evs := s.Step(2.25); countType(evs, event.EventPromptShown) != 0 {
		t.Fatalf("Prompt fired before interval at %v", s.Prompt.Elapsed)
	}
	if evs := s.Step(0.25); countType(evs, event.EventPromptShown) != 1 {
		t.Fatalf("Expected prompt at 3.0s idle, elapsed %v", s.Prompt.Elapsed)
	}
}

func TestStaleDeferredActionDropped(t *testing.T) {
	s := startedWithPrompt(t, 1000, 900)
	s.Submit("zzz")

	// Lose while the retry is pending, then restart
	s.Race.PursuerDistance = s.Race.PlayerDistance
	s.Step(0.01)
	if s.Phase != core.PhaseLost {
		t.Fatalf("Expected LOST, got %v", s.Phase)
	}
	if evs := s.Submit("anything"); len(evs) != 0 {
		t.Errorf("Expected submission ignored after loss, got %+v", evs)
	}

	s.Start()
	s.Step(0.01)
	if !s.Prompt.Active {
		t.Fatal("Expected fresh prompt after restart")
	}

	// An action scheduled under the previous generation must not touch the new prompt
	s.pending = append(s.pending, deferredAction{kind: actionClearPrompt, remaining: 0.1, generation: s.Generation() - 1})
	evs := s.Step(0.2)

	if !s.Prompt.Active {
		t.Error("Stale clear action cleared the new prompt")
	}
	if countType(evs, event.EventPromptHidden) != 0 {
		t.Errorf("Unexpected prompt hidden event %+v", evs)
	}
	if len(s.pending) != 0 {
		t.Errorf("Expected stale action consumed, %d pending", len(s.pending))
	}
}

func TestDefaultTuningLosesWithoutAnswers(t *testing.T) {
	params := parameter.DefaultRace()
	catchAt := (params.PlayerStartDistance - params.PursuerStartDistance) / (params.PursuerSpeed - params.PlayerSpeed)
	finishAt := (params.TotalDistance - params.PlayerStartDistance) / params.PlayerSpeed
	if catchAt >= finishAt {
		t.Fatalf("Expected capture at %.2fs before finish at %.2fs", catchAt, finishAt)
	}

	s := newTestSession(t)
	s.Start()
	elapsed := 0.0
	for i := 0; i < 10000 && s.Phase == core.PhasePlaying; i++ {
		s.Step(1.0 / 60)
		elapsed += 1.0 / 60
	}

	if s.Phase != core.PhaseLost {
		t.Fatalf("Expected LOST, got %v", s.Phase)
	}
	if s.Race.PlayerDistance >= params.TotalDistance {
		t.Errorf("Player reached finish %v before capture", s.Race.PlayerDistance)
	}
	if elapsed < catchAt-0.1 || elapsed > catchAt+0.1 {
		t.Errorf("Expected capture near %.2fs, got %.2fs", catchAt, elapsed)
	}
	if s.Prompt.Active {
		t.Error("Expected prompt retired on game over")
	}
}

func TestStepEmitsVisualsEveryTick(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	for i := 0; i < 5; i++ {
		evs := s.Step(0.016)
		if countType(evs, event.EventVisualsUpdated) != 1 {
			t.Fatalf("Step %d: expected one visuals event, got %+v", i, evs)
		}
		last := evs[len(evs)-1]
		if last.Generation != 1 || last.Tick != uint64(i+1) {
			t.Errorf("Unexpected metadata gen=%d tick=%d", last.Generation, last.Tick)
		}
	}
}

func TestNegativeElapsedClamped(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	s.Step(-1)

	if s.Race.PlayerDistance != 500 || s.Race.PursuerDistance != 0 {
		t.Errorf("Negative elapsed moved the race: %+v", s.Race)
	}
}
