package parameter

import "time"

// Audio output
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
	DefaultVolume       = 0.6
)

// Rejected answer buzz
const (
	ErrorSoundDuration = 150 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 40 * time.Millisecond
)

// Accepted answer bell
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Escape chime, two notes
const (
	CoinSoundNote1Duration = 100 * time.Millisecond
	CoinSoundNote2Duration = 400 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 20 * time.Millisecond
	CoinSoundNote2Release  = 350 * time.Millisecond
)

// Capture rumble
const (
	RumbleSoundDuration = 700 * time.Millisecond
	RumbleSoundAttack   = 10 * time.Millisecond
	RumbleSoundRelease  = 500 * time.Millisecond
)
