package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/verb-runner/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateErrorSound is a short saw buzz for a rejected answer
func CreateErrorSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(110.0, parameter.ErrorSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.ErrorSoundDuration, parameter.ErrorSoundAttack, parameter.ErrorSoundRelease, rate)
	return newVolume(shaped, vol)
}

// CreateBellSound is a ding with an octave overtone for an accepted answer
func CreateBellSound(rate beep.SampleRate, vol float64) beep.Streamer {
	fund := NewOscillator(880.0, parameter.BellSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, rate)

	over := NewOscillator(1760.0, parameter.BellSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, rate)

	return newVolume(beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3)), vol)
}

// CreateCoinSound is a rising two-note chime for an escape
func CreateCoinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(987.77, parameter.CoinSoundNote1Duration, WaveSquare, rate) // B5
	n1Shaped := NewEnvelope(n1, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, parameter.CoinSoundNote2Duration, WaveSquare, rate) // E6
	n2Shaped := NewEnvelope(n2, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.5)
}

// CreateRumbleSound is low noise over a sine for a capture
func CreateRumbleSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.RumbleSoundDuration
	tone := NewEnvelope(NewOscillator(55.0, d, WaveSine, rate), d, parameter.RumbleSoundAttack, parameter.RumbleSoundRelease, rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.RumbleSoundAttack, parameter.RumbleSoundRelease, rate)
	return newVolume(beep.Mix(newVolume(tone, 0.6), newVolume(noise, 0.25)), vol)
}

// Synthesize returns a finite streamer for the cue, or nil for an unknown cue
func Synthesize(cue Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	switch cue {
	case CueAccepted:
		return CreateBellSound(rate, vol)
	case CueRejected:
		return CreateErrorSound(rate, vol)
	case CueWon:
		return CreateCoinSound(rate, vol)
	case CueLost:
		return CreateRumbleSound(rate, vol)
	default:
		return nil
	}
}
