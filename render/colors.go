package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbSky        = tcell.NewRGBColor(36, 40, 59)    // Slightly lighter band above the ground
	RgbGround     = tcell.NewRGBColor(86, 95, 137)   // Muted slate
	RgbTrack      = tcell.NewRGBColor(180, 180, 180) // Progress track
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange runner
	RgbPursuer    = tcell.NewRGBColor(180, 50, 50)   // Dark red pursuer
	RgbDoor       = tcell.NewRGBColor(255, 255, 0)   // Bright yellow finish door

	RgbPrompt      = tcell.NewRGBColor(255, 255, 255)
	RgbAnswer      = tcell.NewRGBColor(200, 200, 200)
	RgbAnswerOK    = tcell.NewRGBColor(0, 200, 0)
	RgbAnswerError = tcell.NewRGBColor(255, 80, 80)
	RgbCursor      = tcell.NewRGBColor(255, 255, 255)

	RgbStatusBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)
	RgbMetricsText = tcell.NewRGBColor(180, 180, 180)

	RgbTitle     = tcell.NewRGBColor(140, 190, 255)
	RgbTitleWon  = tcell.NewRGBColor(50, 255, 50)
	RgbTitleLost = tcell.NewRGBColor(255, 80, 80)
	RgbSubtitle  = tcell.NewRGBColor(200, 200, 200)
)
