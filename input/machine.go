package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/verb-runner/core"
)

// systemKeys apply in every phase
var systemKeys = map[tcell.Key]IntentType{
	tcell.KeyCtrlC:  IntentQuit,
	tcell.KeyCtrlQ:  IntentQuit,
	tcell.KeyEscape: IntentQuit,
	tcell.KeyCtrlS:  IntentToggleEffectMute,
}

// textKeys apply only while racing
var textKeys = map[tcell.Key]IntentType{
	tcell.KeyBackspace:  IntentTextBackspace,
	tcell.KeyBackspace2: IntentTextBackspace,
	tcell.KeyCtrlU:      IntentTextClear,
	tcell.KeyLeft:       IntentTextLeft,
	tcell.KeyRight:      IntentTextRight,
}

// ctrlRunes covers terminals that report Ctrl+letter as a rune with ModCtrl
var ctrlRunes = map[rune]tcell.Key{
	'c': tcell.KeyCtrlC,
	'q': tcell.KeyCtrlQ,
	's': tcell.KeyCtrlS,
	'u': tcell.KeyCtrlU,
}

// Translate maps a key event to an intent for the current phase
// Enter starts from START/WON/LOST and submits while PLAYING
func Translate(ev *tcell.EventKey, phase core.Phase) Intent {
	if ev == nil {
		return Intent{}
	}

	key := ev.Key()
	if key == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		if k, ok := ctrlRunes[unicode.ToLower(ev.Rune())]; ok {
			key = k
		}
	}

	if t, ok := systemKeys[key]; ok {
		return Intent{Type: t}
	}

	if key == tcell.KeyEnter {
		if phase.CanStart() {
			return Intent{Type: IntentStart}
		}
		return Intent{Type: IntentSubmit}
	}

	if phase != core.PhasePlaying {
		return Intent{}
	}

	if t, ok := textKeys[key]; ok {
		return Intent{Type: t}
	}

	if key == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		if r := ev.Rune(); unicode.IsPrint(r) {
			return Intent{Type: IntentTextChar, Char: r}
		}
	}

	return Intent{}
}
