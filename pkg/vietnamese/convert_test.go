package vietnamese

import "testing"

func TestConvertTelexDigraphs(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"aw", "ă"},
		{"aa", "â"},
		{"ow", "ơ"},
		{"oo", "ô"},
		{"uw", "ư"},
		{"dd", "đ"},
		{"ee", "ê"},
	}

	for _, tc := range testCases {
		if got := Convert(tc.in, Telex); got != tc.want {
			t.Errorf("Convert(%q, Telex) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConvertVNIDigraphs(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"a8", "ă"},
		{"a6", "â"},
		{"o7", "ơ"},
		{"o6", "ô"},
		{"u7", "ư"},
		{"d9", "đ"},
		{"e6", "ê"},
	}

	for _, tc := range testCases {
		if got := Convert(tc.in, VNI); got != tc.want {
			t.Errorf("Convert(%q, VNI) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// A tone signal lands on the same vowel whether it is typed before or
// after it.
func TestConvertToneOrderIndependence(t *testing.T) {
	pairs := []struct {
		a, b string
		want string
	}{
		{"as", "sa", "á"},
		{"af", "fa", "à"},
		{"aj", "ja", "ả"},
		{"ar", "ra", "ạ"},
	}

	for _, p := range pairs {
		gotA := Convert(p.a, Telex)
		gotB := Convert(p.b, Telex)
		if gotA != p.want || gotB != p.want {
			t.Errorf("Convert(%q)=%q, Convert(%q)=%q, want both %q", p.a, gotA, p.b, gotB, p.want)
		}
	}
}

func TestConvertToneRemoval(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"asx", "a"},  // acute applied then stripped
		{"awsx", "ă"}, // removal keeps the vowel shape
		{"az", "a"},
		{"ax", "a"},
	}

	for _, tc := range testCases {
		if got := Convert(tc.in, Telex); got != tc.want {
			t.Errorf("Convert(%q, Telex) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// x and z are removal signals only directly after a vowel; elsewhere
// they stay literal letters.
func TestConvertRemovalNeedsPrecedingVowel(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"xin", "xin"},
		{"xa", "xa"},
		{"bx", "bx"},
		{"zung", "zung"},
	}

	for _, tc := range testCases {
		if got := Convert(tc.in, Telex); got != tc.want {
			t.Errorf("Convert(%q, Telex) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConvertTonePriority(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		method InputMethod
		want   string
	}{
		{"modified vowel beats trailing consonant", "uwfn", Telex, "ừn"},
		{"modified vowel beats plain vowel", "muwas", Telex, "mứa"},
		{"first plain vowel wins without modified", "chaos", Telex, "cháo"},
		{"plain vowel after consonants", "muaf", Telex, "mùa"},
		{"vni modified vowel", "u71n", VNI, "ứn"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Convert(tc.in, tc.method); got != tc.want {
				t.Errorf("Convert(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestConvertWordsTelex(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"xin", "xin"},
		{"chao", "chao"},
		{"chaos", "cháo"},
		{"chaof", "chào"},
		{"di", "di"},
		{"ddi", "đi"},
		{"ddoongf", "đồng"},
		{"tuwf", "từ"},
	}

	for _, tc := range testCases {
		if got := Convert(tc.in, Telex); got != tc.want {
			t.Errorf("Convert(%q, Telex) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConvertWordsVNI(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"xin", "xin"},
		{"chao1", "cháo"},
		{"chao2", "chào"},
		{"di", "di"},
		{"d9i", "đi"},
		{"d9o6ng2", "đồng"},
	}

	for _, tc := range testCases {
		if got := Convert(tc.in, VNI); got != tc.want {
			t.Errorf("Convert(%q, VNI) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConvertLastToneWins(t *testing.T) {
	testCases := []struct {
		in     string
		method InputMethod
		want   string
	}{
		{"asf", Telex, "à"},
		{"chaosf", Telex, "chào"},
		{"a12", VNI, "à"},
	}

	for _, tc := range testCases {
		if got := Convert(tc.in, tc.method); got != tc.want {
			t.Errorf("Convert(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Batch conversion strips tone signals from the letter stream even when
// no vowel exists to take the tone. Live typing keeps them literal
// instead; the two entry points intentionally differ here.
func TestConvertSignalStrippedWithoutVowel(t *testing.T) {
	testCases := []struct {
		in     string
		method InputMethod
		want   string
	}{
		{"chs", Telex, "ch"},
		{"bcs", Telex, "bc"},
		{"bc1", VNI, "bc"},
		{"123", VNI, ""},
	}

	for _, tc := range testCases {
		if got := Convert(tc.in, tc.method); got != tc.want {
			t.Errorf("Convert(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConvertLowercasesInput(t *testing.T) {
	if got := Convert("CHAOS", Telex); got != "cháo" {
		t.Errorf("Convert(%q) = %q, want %q", "CHAOS", got, "cháo")
	}
	if got := Convert("Aw", Telex); got != "ă" {
		t.Errorf("Convert(%q) = %q, want %q", "Aw", got, "ă")
	}
}

func TestConvertPassesNonLettersThrough(t *testing.T) {
	if got := Convert("", Telex); got != "" {
		t.Errorf("Convert(\"\") = %q, want empty", got)
	}
	if got := Convert("123", Telex); got != "123" {
		t.Errorf("Convert(%q, Telex) = %q, want %q", "123", got, "123")
	}
	if got := Convert("a bs", Telex); got != "á b" {
		t.Errorf("Convert(%q, Telex) = %q, want %q", "a bs", got, "á b")
	}
}

func TestDecompose(t *testing.T) {
	testCases := []struct {
		r    rune
		want CharInfo
	}{
		{'a', CharInfo{Base: 'a', Mod: ModNone, CanTakeTone: true}},
		{'ắ', CharInfo{Base: 'a', Mod: ModBreve, CanTakeTone: true}},
		{'ộ', CharInfo{Base: 'o', Mod: ModCircumflex, CanTakeTone: true}},
		{'ữ', CharInfo{Base: 'u', Mod: ModHorn, CanTakeTone: true}},
		{'đ', CharInfo{Base: 'd', Mod: ModNone, CanTakeTone: false}},
		{'b', CharInfo{Base: 'b', Mod: ModNone, CanTakeTone: false}},
		{'9', CharInfo{Base: '9', Mod: ModNone, CanTakeTone: false}},
	}

	for _, tc := range testCases {
		if got := Decompose(tc.r); got != tc.want {
			t.Errorf("Decompose(%q) = %+v, want %+v", tc.r, got, tc.want)
		}
	}
}
