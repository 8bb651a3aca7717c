package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit             // Ctrl+Q, Ctrl+C, Esc
	IntentToggleEffectMute // Ctrl+S

	// Phase control
	IntentStart  // Enter on title or game over screen
	IntentSubmit // Enter while racing

	// Answer field editing
	IntentTextChar      // Printable character
	IntentTextBackspace // Backspace
	IntentTextClear     // Ctrl+U
	IntentTextLeft      // Left arrow
	IntentTextRight     // Right arrow
)

// Intent is a parsed key press
type Intent struct {
	Type IntentType
	Char rune // IntentTextChar only
}
