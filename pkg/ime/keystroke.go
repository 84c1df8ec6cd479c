package ime

import "fmt"

// KeyKind discriminates the key variants a platform layer can deliver.
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyTab
	KeySpace
	KeyArrow
	KeyUnknown
)

// ArrowDirection identifies which arrow key was pressed.
type ArrowDirection int

const (
	ArrowLeft ArrowDirection = iota
	ArrowUp
	ArrowRight
	ArrowDown
)

// Modifiers is a bitmask of modifier keys held during a keystroke.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Has reports whether all modifiers in flag are set.
func (m Modifiers) Has(flag Modifiers) bool { return m&flag == flag }

// Key identifies one physical key. Kind selects the meaningful payload
// field: Rune for KeyChar, Dir for KeyArrow, Code for KeyUnknown.
type Key struct {
	Kind KeyKind
	Rune rune
	Dir  ArrowDirection
	Code uint32
}

// Keystroke is one physical input event: a key plus the modifier state at
// the moment it was pressed. Values are constructed once per event and
// never mutated.
type Keystroke struct {
	Key  Key
	Mods Modifiers
}

// CharKey returns a keystroke for a printable character with no modifiers.
func CharKey(r rune) Keystroke {
	return Keystroke{Key: Key{Kind: KeyChar, Rune: r}}
}

// BackspaceKey returns a backspace keystroke.
func BackspaceKey() Keystroke { return Keystroke{Key: Key{Kind: KeyBackspace}} }

// DeleteKey returns a forward-delete keystroke.
func DeleteKey() Keystroke { return Keystroke{Key: Key{Kind: KeyDelete}} }

// EnterKey returns an enter keystroke.
func EnterKey() Keystroke { return Keystroke{Key: Key{Kind: KeyEnter}} }

// EscapeKey returns an escape keystroke.
func EscapeKey() Keystroke { return Keystroke{Key: Key{Kind: KeyEscape}} }

// TabKey returns a tab keystroke.
func TabKey() Keystroke { return Keystroke{Key: Key{Kind: KeyTab}} }

// SpaceKey returns a space keystroke delivered as a control key rather
// than as the character ' '.
func SpaceKey() Keystroke { return Keystroke{Key: Key{Kind: KeySpace}} }

// ArrowKey returns an arrow keystroke in the given direction.
func ArrowKey(d ArrowDirection) Keystroke {
	return Keystroke{Key: Key{Kind: KeyArrow, Dir: d}}
}

// UnknownKey returns a keystroke for a platform key code the adapter
// could not classify.
func UnknownKey(code uint32) Keystroke {
	return Keystroke{Key: Key{Kind: KeyUnknown, Code: code}}
}

// WithMods returns a copy of the keystroke with the modifier mask set.
func (k Keystroke) WithMods(m Modifiers) Keystroke {
	k.Mods = m
	return k
}

// IsTerminator reports whether the keystroke ends composition: Enter,
// Escape, and the arrow keys.
func (k Keystroke) IsTerminator() bool {
	switch k.Key.Kind {
	case KeyEnter, KeyEscape, KeyArrow:
		return true
	}
	return false
}

// IsDeletion reports whether the keystroke removes text from the buffer.
func (k Keystroke) IsDeletion() bool {
	return k.Key.Kind == KeyBackspace || k.Key.Kind == KeyDelete
}

var arrowGlyphs = [...]string{ArrowLeft: "←", ArrowUp: "↑", ArrowRight: "→", ArrowDown: "↓"}

// String renders the keystroke for logs and traces.
func (k Keystroke) String() string {
	var prefix string
	if k.Mods.Has(ModShift) {
		prefix += "shift+"
	}
	if k.Mods.Has(ModControl) {
		prefix += "ctrl+"
	}
	if k.Mods.Has(ModAlt) {
		prefix += "alt+"
	}
	if k.Mods.Has(ModMeta) {
		prefix += "meta+"
	}
	switch k.Key.Kind {
	case KeyChar:
		return prefix + string(k.Key.Rune)
	case KeyBackspace:
		return prefix + "⌫"
	case KeyDelete:
		return prefix + "⌦"
	case KeyEnter:
		return prefix + "↵"
	case KeyEscape:
		return prefix + "⎋"
	case KeyTab:
		return prefix + "⇥"
	case KeySpace:
		return prefix + "␣"
	case KeyArrow:
		if int(k.Key.Dir) < len(arrowGlyphs) {
			return prefix + arrowGlyphs[k.Key.Dir]
		}
		return prefix + "arrow"
	default:
		return prefix + fmt.Sprintf("<%#x>", k.Key.Code)
	}
}
