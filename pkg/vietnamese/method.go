package vietnamese

import (
	"fmt"
	"strings"
)

// InputMethod selects which reserved-key grammar the pack applies.
type InputMethod int

const (
	// Telex composes with letter pairs (aw, aa, ow, oo, uw, dd, ee),
	// carries tones on s f j r, and removes them with x or z.
	Telex InputMethod = iota
	// VNI composes with digit suffixes (8 6 7 9 for vowel shapes) and
	// carries tones on the digits 1 through 5.
	VNI
)

// String returns the lowercase method name used in configuration.
func (m InputMethod) String() string {
	if m == VNI {
		return "vni"
	}
	return "telex"
}

// ParseInputMethod maps a configuration string to an InputMethod,
// matching case-insensitively.
func ParseInputMethod(s string) (InputMethod, error) {
	switch strings.ToLower(s) {
	case "telex":
		return Telex, nil
	case "vni":
		return VNI, nil
	default:
		return Telex, fmt.Errorf("unknown input method %q", s)
	}
}

func (m InputMethod) digraphs() map[[2]rune]rune {
	if m == VNI {
		return vniDigraphs
	}
	return telexDigraphs
}

func (m InputMethod) tones() map[rune]ToneMark {
	if m == VNI {
		return vniTones
	}
	return telexTones
}
