package input

import (
	"github.com/lixenwraith/verb-runner/event"
)

// Field is the answer text field
// Editing is accepted only while a prompt is open and not in its feedback delay
type Field struct {
	text    []rune
	cursor  int // Index before which the cursor sits
	enabled bool
}

func NewField() *Field {
	return &Field{}
}

// Value returns the current text
func (f *Field) Value() string {
	return string(f.text)
}

// Cursor returns the cursor rune index
func (f *Field) Cursor() int {
	return f.cursor
}

// Enabled reports whether the field accepts edits and submission
func (f *Field) Enabled() bool {
	return f.enabled
}

// Clear empties the field
func (f *Field) Clear() {
	f.text = f.text[:0]
	f.cursor = 0
}

// Insert adds r at the cursor
func (f *Field) Insert(r rune) bool {
	if !f.enabled {
		return false
	}
	f.text = append(f.text[:f.cursor], append([]rune{r}, f.text[f.cursor:]...)...)
	f.cursor++
	return true
}

// DeleteBackward removes the rune before the cursor
func (f *Field) DeleteBackward() bool {
	if !f.enabled || f.cursor == 0 {
		return false
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	return true
}

// MoveLeft and MoveRight shift the cursor by one rune
func (f *Field) MoveLeft() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *Field) MoveRight() {
	if f.cursor < len(f.text) {
		f.cursor++
	}
}

// Apply performs an editing intent; non-editing intents are ignored
func (f *Field) Apply(in Intent) {
	switch in.Type {
	case IntentTextChar:
		f.Insert(in.Char)
	case IntentTextBackspace:
		f.DeleteBackward()
	case IntentTextClear:
		if f.enabled {
			f.Clear()
		}
	case IntentTextLeft:
		f.MoveLeft()
	case IntentTextRight:
		f.MoveRight()
	}
}

func (f *Field) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPromptShown,
		event.EventInputReset,
		event.EventAnswerAccepted,
		event.EventAnswerRejected,
		event.EventPromptHidden,
	}
}

func (f *Field) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPromptShown, event.EventInputReset:
		f.Clear()
		f.enabled = true
	case event.EventAnswerAccepted, event.EventAnswerRejected:
		f.enabled = false
	case event.EventPromptHidden:
		f.Clear()
		f.enabled = false
	}
}
