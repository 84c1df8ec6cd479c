package vietnamese

// telexDigraphs folds two letters into one modified vowel.
var telexDigraphs = map[[2]rune]rune{
	{'a', 'w'}: 'ă',
	{'a', 'a'}: 'â',
	{'o', 'w'}: 'ơ',
	{'o', 'o'}: 'ô',
	{'u', 'w'}: 'ư',
	{'d', 'd'}: 'đ',
	{'e', 'e'}: 'ê',
}

// telexTones maps the tone-request letters. No letter maps to Tilde;
// x and z request removal instead and are matched separately.
var telexTones = map[rune]ToneMark{
	's': ToneAcute,
	'f': ToneGrave,
	'j': ToneHookAbove,
	'r': ToneDotBelow,
}

// isTelexRemoval reports whether r requests explicit tone removal.
func isTelexRemoval(r rune) bool { return r == 'x' || r == 'z' }
