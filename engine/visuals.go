package engine

import (
	"github.com/samber/lo"

	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/parameter"
)

// DeriveVisuals maps race state onto a viewport of the given width
// The player sits at the center until within half a viewport of the finish, then slides right
// The pursuer trails by the live gap and may fall off the left edge
func DeriveVisuals(params parameter.Race, race RaceState, width float64) core.Visuals {
	half := width / 2
	playerX := half
	if edge := params.TotalDistance - half; race.PlayerDistance > edge {
		playerX = half + (race.PlayerDistance - edge)
	}

	remaining := params.TotalDistance - race.PlayerDistance
	v := core.Visuals{
		PlayerX:          playerX,
		PursuerX:         playerX - (race.PlayerDistance - race.PursuerDistance),
		DoorVisible:      remaining < width,
		BackgroundOffset: race.ScrollOffset,
	}
	if v.DoorVisible {
		v.DoorX = playerX + remaining
	}

	if params.TotalDistance > 0 {
		v.PlayerProgressPct = lo.Clamp(100*race.PlayerDistance/params.TotalDistance, 0, 100)
		v.PursuerProgressPct = lo.Clamp(100*race.PursuerDistance/params.TotalDistance, 0, 100)
	}
	return v
}
