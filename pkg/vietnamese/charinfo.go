package vietnamese

// VowelMod is the shape modification carried by a Vietnamese vowel.
type VowelMod int

const (
	ModNone VowelMod = iota
	ModBreve
	ModCircumflex
	ModHorn
)

// String returns the lowercase modification name.
func (m VowelMod) String() string {
	switch m {
	case ModBreve:
		return "breve"
	case ModCircumflex:
		return "circumflex"
	case ModHorn:
		return "horn"
	default:
		return "none"
	}
}

// ToneMark is one of the five Vietnamese tone diacritics, or none.
// At most one tone is active per syllable; a new request replaces any
// earlier one.
type ToneMark int

const (
	ToneNone ToneMark = iota
	ToneAcute
	ToneGrave
	ToneHookAbove
	ToneTilde
	ToneDotBelow
)

// String returns the lowercase tone name.
func (t ToneMark) String() string {
	switch t {
	case ToneAcute:
		return "acute"
	case ToneGrave:
		return "grave"
	case ToneHookAbove:
		return "hook-above"
	case ToneTilde:
		return "tilde"
	case ToneDotBelow:
		return "dot-below"
	default:
		return "none"
	}
}

// CharInfo is the decomposed form of one already-composed character: its
// base Latin letter, its vowel modification, and whether a tone mark can
// land on it.
type CharInfo struct {
	Base        rune
	Mod         VowelMod
	CanTakeTone bool
}

type charKey struct {
	base rune
	mod  VowelMod
}

// renderTable maps a decomposed vowel to its precomposed character under
// each tone, indexed by ToneMark. Combinations that do not occur in
// Vietnamese (ă takes no circumflex, đ is not a vowel) have no row;
// rendering falls back to the character as written.
var renderTable = map[charKey][6]rune{
	{'a', ModNone}:       {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	{'a', ModBreve}:      {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	{'a', ModCircumflex}: {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	{'e', ModNone}:       {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	{'e', ModCircumflex}: {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	{'i', ModNone}:       {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	{'o', ModNone}:       {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	{'o', ModCircumflex}: {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	{'o', ModHorn}:       {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	{'u', ModNone}:       {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	{'u', ModHorn}:       {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	{'y', ModNone}:       {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// decomposeTable inverts renderTable, mapping every precomposed
// character (toned or not) back to its base letter and modification.
var decomposeTable = map[rune]CharInfo{}

func init() {
	for key, row := range renderTable {
		for _, r := range row {
			decomposeTable[r] = CharInfo{Base: key.base, Mod: key.mod, CanTakeTone: true}
		}
	}
	// đ folds from dd but carries no vowel modification and never takes
	// a tone. It has no renderTable row, so a literal d stays d.
	decomposeTable['đ'] = CharInfo{Base: 'd'}
}

// Decompose returns the base letter and vowel modification of an
// already-composed character. Characters outside the Vietnamese set come
// back as their own base with no modification and no tone eligibility.
func Decompose(r rune) CharInfo {
	if info, ok := decomposeTable[r]; ok {
		return info
	}
	return CharInfo{Base: r}
}

// renderRune maps a decomposed character back to its precomposed form
// under the given tone. Unmapped combinations keep the character as
// written.
func renderRune(orig rune, info CharInfo, tone ToneMark) rune {
	if row, ok := renderTable[charKey{info.Base, info.Mod}]; ok {
		return row[tone]
	}
	return orig
}
