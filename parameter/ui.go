package parameter

import "time"

// Frame loop
const (
	// DefaultFPS is the render and simulation rate
	DefaultFPS = 60

	// DefaultMaxFrameDelta caps a single simulation step after the process was suspended
	DefaultMaxFrameDelta = 250 * time.Millisecond

	// DefaultCellUnits is the distance covered by one terminal column
	DefaultCellUnits = 10.0

	// DefaultViewportWidth is used until the first resize reports the real width
	DefaultViewportWidth = 800.0
)

// Layout rows counted from the top of the screen
const (
	StatusBarRow   = 0
	ProgressBarRow = 2
	SkyRows        = 3
	PromptRowGap   = 2
)

// Glyphs
const (
	GlyphPlayer        = '@'
	GlyphPursuer       = 'G'
	GlyphDoor          = '█'
	GlyphGround        = '▒'
	GlyphGroundAlt     = '░'
	GlyphTrack         = '─'
	GlyphPlayerMarker  = 'P'
	GlyphPursuerMarker = 'G'
)

// Queue
const (
	// EventQueueSize must be a power of 2
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
