// Package event carries outbound game signals from the simulation to the presentation side
package event

// EventType represents the type of game event
type EventType int

const (
	// EventPhaseChanged signals a game phase transition
	// Trigger: Start, race termination | Payload: *PhasePayload
	EventPhaseChanged EventType = iota

	// EventPromptShown signals a new quiz prompt; input is enabled and cleared
	// Trigger: Prompt timer threshold | Payload: *PromptPayload
	EventPromptShown

	// EventPromptHidden signals no prompt is in flight; input is disabled and cleared
	// Trigger: Correct answer feedback delay elapsed, start, game over | Payload: nil
	EventPromptHidden

	// EventAnswerAccepted signals a correct submission; input locked for the feedback delay
	// Consumer: Scene (success tint), Cues (bell) | Payload: *AnswerPayload
	EventAnswerAccepted

	// EventAnswerRejected signals a wrong submission; input locked for the feedback delay
	// Consumer: Scene (error tint), Cues (buzz) | Payload: *AnswerPayload
	EventAnswerRejected

	// EventInputReset re-enables and clears the answer field for a retry of the same prompt
	// Trigger: Wrong answer feedback delay elapsed | Payload: nil
	EventInputReset

	// EventVisualsUpdated carries the derived visuals of one simulation tick
	// Trigger: Every PLAYING tick, start | Payload: *VisualsPayload
	EventVisualsUpdated

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventPhaseChanged:   "PhaseChanged",
	EventPromptShown:    "PromptShown",
	EventPromptHidden:   "PromptHidden",
	EventAnswerAccepted: "AnswerAccepted",
	EventAnswerRejected: "AnswerRejected",
	EventInputReset:     "InputReset",
	EventVisualsUpdated: "VisualsUpdated",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any

	// Generation is the session generation that produced the event
	Generation uint64
	// Tick is the simulation step counter at emission
	Tick uint64
}
