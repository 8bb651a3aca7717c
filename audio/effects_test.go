package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/event"
	"github.com/lixenwraith/verb-runner/parameter"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestOscillatorWaves(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)

		require.True(t, ok)
		require.Equal(t, 100, n)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, math.Abs(samples[i][0]), 1.0, "wave %d sample %d", wave, i)
			assert.Equal(t, samples[i][0], samples[i][1], "channels differ")
		}
		if wave == WaveSquare {
			assert.Contains(t, []float64{-1, 1}, samples[10][0])
		}
	}
}

func TestOscillatorEnds(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSine, testRate)
	n, _ := drain(t, osc, testRate.N(time.Second))
	assert.Equal(t, testRate.N(10*time.Millisecond), n)
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	samples := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(samples)
	require.Equal(t, len(samples), n)

	assert.Zero(t, samples[0][0], "attack starts silent")
	assert.InDelta(t, 1.0, samples[n/2][0], 1e-9, "sustain at full level")
	assert.Less(t, samples[n-1][0], 0.01, "release ends near silence")
}

func TestErrorSoundFinite(t *testing.T) {
	n, peak := drain(t, CreateErrorSound(testRate, 1), testRate.N(time.Second))
	assert.Equal(t, testRate.N(parameter.ErrorSoundDuration), n)
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestSilentVolume(t *testing.T) {
	s := CreateErrorSound(testRate, 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		assert.Zero(t, buf[i][0])
	}
}

func TestSynthesizeAllCues(t *testing.T) {
	for c := CueAccepted; c < cueCount; c++ {
		s := Synthesize(c, testRate, 0.5)
		require.NotNil(t, s, c.String())

		buf := make([][2]float64, 512)
		n, ok := s.Stream(buf)
		assert.True(t, ok, c.String())
		assert.Positive(t, n, c.String())
	}
	assert.Nil(t, Synthesize(Cue(42), testRate, 1))
	assert.Equal(t, "unknown", Cue(42).String())
}

type recordingPlayer struct {
	played []Cue
}

func (p *recordingPlayer) Play(c Cue) { p.played = append(p.played, c) }

func TestCuesHandler(t *testing.T) {
	rec := &recordingPlayer{}
	cues := NewCues(rec)

	for _, ev := range []event.GameEvent{
		{Type: event.EventAnswerAccepted, Payload: &event.AnswerPayload{Input: "hablo"}},
		{Type: event.EventAnswerRejected, Payload: &event.AnswerPayload{Input: "hable"}},
		{Type: event.EventPhaseChanged, Payload: &event.PhasePayload{Phase: core.PhasePlaying}},
		{Type: event.EventPhaseChanged, Payload: &event.PhasePayload{Phase: core.PhaseWon}},
		{Type: event.EventPhaseChanged, Payload: &event.PhasePayload{Phase: core.PhaseLost}},
		{Type: event.EventPhaseChanged},
	} {
		cues.HandleEvent(ev)
	}

	assert.Equal(t, []Cue{CueAccepted, CueRejected, CueWon, CueLost}, rec.played)
	assert.ElementsMatch(t, []event.EventType{
		event.EventAnswerAccepted, event.EventAnswerRejected, event.EventPhaseChanged,
	}, cues.EventTypes())
}

func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager(2)
	assert.Equal(t, 1.0, sm.volume)
	assert.False(t, sm.Initialized())

	assert.True(t, sm.ToggleMute())
	assert.False(t, sm.ToggleMute())

	assert.NotPanics(t, func() {
		sm.Play(CueAccepted)
		sm.Play(CueLost)
		sm.Cleanup()
	})
}
