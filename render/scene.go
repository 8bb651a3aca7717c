package render

import (
	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/event"
)

// Feedback is the tint applied to the answer line after a submission
type Feedback uint8

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

// Scene is the presentation model, updated only through routed events
type Scene struct {
	Phase    core.Phase
	Title    string
	Subtitle string

	PromptVisible bool
	PromptText    string

	// Feedback lasts until the prompt is hidden or reopened
	Feedback Feedback
	Visuals  core.Visuals
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPhaseChanged,
		event.EventPromptShown,
		event.EventPromptHidden,
		event.EventAnswerAccepted,
		event.EventAnswerRejected,
		event.EventInputReset,
		event.EventVisualsUpdated,
	}
}

func (s *Scene) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPhaseChanged:
		if p, ok := ev.Payload.(*event.PhasePayload); ok {
			s.Phase, s.Title, s.Subtitle = p.Phase, p.Title, p.Subtitle
		}
	case event.EventPromptShown:
		if p, ok := ev.Payload.(*event.PromptPayload); ok {
			s.PromptVisible = true
			s.PromptText = p.Display
			s.Feedback = FeedbackNone
		}
	case event.EventPromptHidden:
		s.PromptVisible = false
		s.PromptText = ""
		s.Feedback = FeedbackNone
	case event.EventAnswerAccepted:
		s.Feedback = FeedbackCorrect
	case event.EventAnswerRejected:
		s.Feedback = FeedbackWrong
	case event.EventInputReset:
		s.Feedback = FeedbackNone
	case event.EventVisualsUpdated:
		if p, ok := ev.Payload.(*event.VisualsPayload); ok {
			s.Visuals = p.Visuals
		}
	}
}
