package core

// Visuals is the per-frame placement derived from race state and viewport width
// All X values are in distance units measured from the left viewport edge
// Recomputed every tick, never stored by the simulation
type Visuals struct {
	PlayerX  float64
	PursuerX float64 // May be negative (off-screen left)

	DoorVisible bool
	DoorX       float64

	PlayerProgressPct  float64 // [0,100]
	PursuerProgressPct float64 // [0,100]

	// BackgroundOffset scrolls the ground texture, always <= 0
	BackgroundOffset float64
}
