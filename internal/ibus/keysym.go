//go:build linux

package ibus

import "github.com/hieple7985/hip-key/pkg/ime"

// IBus D-Bus constants.
const (
	IBusService          = "org.freedesktop.IBus"
	IBusPath             = "/org/freedesktop/IBus"
	IBusInterface        = "org.freedesktop.IBus"
	IBusFactoryInterface = "org.freedesktop.IBus.Factory"
	IBusEngineInterface  = "org.freedesktop.IBus.Engine"

	HipkeyBusName    = "com.hipkey.IBus"
	HipkeyEngineName = "hipkey"
)

// IBus key event state masks.
const (
	IBusShiftMask   uint32 = 1 << 0
	IBusLockMask    uint32 = 1 << 1
	IBusControlMask uint32 = 1 << 2
	IBusMod1Mask    uint32 = 1 << 3 // Alt
	IBusMod4Mask    uint32 = 1 << 6 // Super/Meta
	IBusReleaseMask uint32 = 1 << 30
)

// Common GDK key symbols.
const (
	GDKBackSpace = 0xff08
	GDKDelete    = 0xffff
	GDKReturn    = 0xff0d
	GDKKPEnter   = 0xff8d
	GDKTab       = 0xff09
	GDKEscape    = 0xff1b
	GDKSpace     = 0x0020
	GDKLeft      = 0xff51
	GDKUp        = 0xff52
	GDKRight     = 0xff53
	GDKDown      = 0xff54
)

// KeystrokeFromKeyval maps an X11 keysym and IBus state mask to an
// engine keystroke. The boolean is false for keys the engine has no
// representation for (function keys, bare modifiers); those pass
// through to the application untouched. Space arrives as an ordinary
// character key, which is what triggers word-break commits.
func KeystrokeFromKeyval(keyval, state uint32) (ime.Keystroke, bool) {
	var k ime.Keystroke

	switch keyval {
	case GDKBackSpace:
		k = ime.BackspaceKey()
	case GDKDelete:
		k = ime.DeleteKey()
	case GDKReturn, GDKKPEnter:
		k = ime.EnterKey()
	case GDKEscape:
		k = ime.EscapeKey()
	case GDKTab:
		k = ime.TabKey()
	case GDKLeft:
		k = ime.ArrowKey(ime.ArrowLeft)
	case GDKUp:
		k = ime.ArrowKey(ime.ArrowUp)
	case GDKRight:
		k = ime.ArrowKey(ime.ArrowRight)
	case GDKDown:
		k = ime.ArrowKey(ime.ArrowDown)
	default:
		r := keyvalToRune(keyval)
		if r == 0 {
			return ime.Keystroke{}, false
		}
		k = ime.CharKey(r)
	}

	return k.WithMods(modifiersFromState(state)), true
}

// keyvalToRune converts an X11 keysym to a Unicode rune.
func keyvalToRune(keyval uint32) rune {
	// Direct Unicode mapping for the printable ASCII range
	if keyval >= 0x20 && keyval <= 0x7e {
		return rune(keyval)
	}

	// Extended Latin (ISO 8859-1)
	if keyval >= 0xa0 && keyval <= 0xff {
		return rune(keyval)
	}

	// Unicode keysyms (0x01000000 + codepoint)
	if keyval >= 0x01000000 {
		return rune(keyval - 0x01000000)
	}

	return 0
}

func modifiersFromState(state uint32) ime.Modifiers {
	var mods ime.Modifiers
	if state&IBusShiftMask != 0 {
		mods |= ime.ModShift
	}
	if state&IBusControlMask != 0 {
		mods |= ime.ModControl
	}
	if state&IBusMod1Mask != 0 {
		mods |= ime.ModAlt
	}
	if state&IBusMod4Mask != 0 {
		mods |= ime.ModMeta
	}
	return mods
}
