package event

import "github.com/lixenwraith/verb-runner/core"

// PhasePayload describes the new phase and its overlay text
// Title and Subtitle are empty while PLAYING
type PhasePayload struct {
	Phase    core.Phase
	Title    string
	Subtitle string
}

// PromptPayload carries the question as displayed
type PromptPayload struct {
	Verb    string
	Pronoun string
	Display string
}

// AnswerPayload carries the raw submitted text
type AnswerPayload struct {
	Input string
}

// VisualsPayload carries derived visuals for one tick
type VisualsPayload struct {
	Visuals core.Visuals
}
