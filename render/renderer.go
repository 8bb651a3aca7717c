package render

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/parameter"
)

// AnswerView is the read side of the answer field
type AnswerView interface {
	Value() string
	Cursor() int
	Enabled() bool
}

// Layout rows below the progress bar
const (
	skyTop   = parameter.ProgressBarRow + 2
	runnerY  = skyTop + parameter.SkyRows - 1
	groundY  = runnerY + 1
	promptY  = groundY + parameter.PromptRowGap
	answerY  = promptY + 1
	minLines = answerY + 1
)

// Renderer draws a Scene onto a tcell screen
// Viewport distances map to columns through cellUnits
type Renderer struct {
	screen    tcell.Screen
	cellUnits float64
}

func NewRenderer(screen tcell.Screen, cellUnits float64) *Renderer {
	if cellUnits <= 0 {
		cellUnits = parameter.DefaultCellUnits
	}
	return &Renderer{screen: screen, cellUnits: cellUnits}
}

// Draw renders one frame; metrics are appended to the status bar
func (r *Renderer) Draw(scene *Scene, answer AnswerView, metrics []string) {
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	width, height := r.screen.Size()
	if width < 4 || height < minLines {
		r.drawText(0, 0, "terminal too small", base.Foreground(RgbAnswerError))
		r.screen.Show()
		return
	}

	r.drawStatusBar(scene, metrics, width, base)
	r.drawProgressBar(scene.Visuals, width, base)
	r.drawTrack(scene.Visuals, width)

	if scene.PromptVisible {
		r.drawPrompt(scene, answer, width, base)
	}
	if scene.Title != "" {
		r.drawOverlay(scene, width, base)
	}

	r.screen.Show()
}

func (r *Renderer) drawStatusBar(scene *Scene, metrics []string, width int, base tcell.Style) {
	badge := " " + scene.Phase.String() + " "
	x := r.drawText(0, parameter.StatusBarRow, badge, base.Foreground(RgbStatusText).Background(RgbStatusBg))
	if len(metrics) > 0 && x < width {
		line := " " + strings.Join(metrics, "  ")
		r.drawText(x, parameter.StatusBarRow, runewidth.Truncate(line, width-x, "…"), base.Foreground(RgbMetricsText))
	}
}

// drawProgressBar places both markers on a track spanning the screen
// The player marker is drawn last and wins a shared cell
func (r *Renderer) drawProgressBar(v core.Visuals, width int, base tcell.Style) {
	style := base.Foreground(RgbTrack)
	left, right := 1, width-2
	r.screen.SetContent(left-1, parameter.ProgressBarRow, '[', nil, style)
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, parameter.ProgressBarRow, parameter.GlyphTrack, nil, style)
	}
	r.screen.SetContent(right+1, parameter.ProgressBarRow, ']', nil, style)

	span := float64(right - left)
	mark := func(pct float64) int { return left + int(math.Round(pct/100*span)) }

	r.screen.SetContent(mark(v.PursuerProgressPct), parameter.ProgressBarRow, parameter.GlyphPursuerMarker, nil, base.Foreground(RgbPursuer))
	r.screen.SetContent(mark(v.PlayerProgressPct), parameter.ProgressBarRow, parameter.GlyphPlayerMarker, nil, base.Foreground(RgbPlayer))
}

// column maps a viewport distance to a screen column
func (r *Renderer) column(x float64) int {
	return int(math.Floor(x / r.cellUnits))
}

func (r *Renderer) drawTrack(v core.Visuals, width int) {
	sky := tcell.StyleDefault.Background(RgbSky)
	for y := skyTop; y <= runnerY; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, sky)
		}
	}

	// Ground pattern moves left as the offset decreases
	ground := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbGround)
	shift := r.column(v.BackgroundOffset)
	for x := 0; x < width; x++ {
		g := parameter.GlyphGround
		if ((x-shift)%4+4)%4 >= 2 {
			g = parameter.GlyphGroundAlt
		}
		r.screen.SetContent(x, groundY, g, nil, ground)
	}

	if v.DoorVisible {
		if dx := r.column(v.DoorX); dx >= 0 && dx < width {
			door := sky.Foreground(RgbDoor)
			r.screen.SetContent(dx, runnerY, parameter.GlyphDoor, nil, door)
			r.screen.SetContent(dx, runnerY-1, parameter.GlyphDoor, nil, door)
		}
	}

	if gx := r.column(v.PursuerX); gx >= 0 && gx < width {
		r.screen.SetContent(gx, runnerY, parameter.GlyphPursuer, nil, sky.Foreground(RgbPursuer).Bold(true))
	}
	if px := r.column(v.PlayerX); px >= 0 && px < width {
		r.screen.SetContent(px, runnerY, parameter.GlyphPlayer, nil, sky.Foreground(RgbPlayer).Bold(true))
	}
}

func (r *Renderer) drawPrompt(scene *Scene, answer AnswerView, width int, base tcell.Style) {
	startX := r.drawCentered(promptY, scene.PromptText, width, base.Foreground(RgbPrompt).Bold(true))
	if answer == nil {
		return
	}

	fg := RgbAnswer
	switch scene.Feedback {
	case FeedbackCorrect:
		fg = RgbAnswerOK
	case FeedbackWrong:
		fg = RgbAnswerError
	}

	value := []rune(answer.Value())
	x := r.drawText(startX, answerY, "> ", base.Foreground(RgbAnswer))
	cursorX := x + runewidth.StringWidth(string(value[:min(answer.Cursor(), len(value))]))
	r.drawText(x, answerY, string(value), base.Foreground(fg))

	if answer.Enabled() && cursorX < width {
		c, _, _, _ := r.screen.GetContent(cursorX, answerY)
		r.screen.SetContent(cursorX, answerY, c, nil, base.Foreground(RgbBackground).Background(RgbCursor))
	}
}

func (r *Renderer) drawOverlay(scene *Scene, width int, base tcell.Style) {
	titleColor := RgbTitle
	switch scene.Phase {
	case core.PhaseWon:
		titleColor = RgbTitleWon
	case core.PhaseLost:
		titleColor = RgbTitleLost
	}
	r.drawCentered(promptY, scene.Title, width, base.Foreground(titleColor).Bold(true))
	r.drawCentered(answerY, scene.Subtitle, width, base.Foreground(RgbSubtitle))
}

// drawCentered returns the starting column
func (r *Renderer) drawCentered(y int, text string, width int, style tcell.Style) int {
	x := max((width-runewidth.StringWidth(text))/2, 0)
	r.drawText(x, y, text, style)
	return x
}

// drawText writes text from x and returns the column after the last cell
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}
