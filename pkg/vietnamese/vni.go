package vietnamese

// vniDigraphs folds a vowel plus a shape digit into one modified vowel.
var vniDigraphs = map[[2]rune]rune{
	{'a', '8'}: 'ă',
	{'a', '6'}: 'â',
	{'o', '7'}: 'ơ',
	{'o', '6'}: 'ô',
	{'u', '7'}: 'ư',
	{'d', '9'}: 'đ',
	{'e', '6'}: 'ê',
}

// vniTones maps the tone digits. Unlike Telex, every tone including
// Tilde has a key, and the digits are always treated as signals.
var vniTones = map[rune]ToneMark{
	'1': ToneAcute,
	'2': ToneGrave,
	'3': ToneHookAbove,
	'4': ToneTilde,
	'5': ToneDotBelow,
}
