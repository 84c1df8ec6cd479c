package vietnamese

import (
	"errors"
	"testing"

	"github.com/hieple7985/hip-key/pkg/ime"
)

func TestPackIdentity(t *testing.T) {
	p := NewPack(Telex)

	if p.ID() != "vi" {
		t.Errorf("ID() = %q, want %q", p.ID(), "vi")
	}
	if p.Name() != "Vietnamese" {
		t.Errorf("Name() = %q, want %q", p.Name(), "Vietnamese")
	}
	if p.Version() != ime.DefaultVersion {
		t.Errorf("Version() = %q, want %q", p.Version(), ime.DefaultVersion)
	}
	if p.Method() != Telex {
		t.Errorf("Method() = %v, want Telex", p.Method())
	}
}

func TestParseInputMethod(t *testing.T) {
	for _, s := range []string{"telex", "Telex", "TELEX"} {
		m, err := ParseInputMethod(s)
		if err != nil || m != Telex {
			t.Errorf("ParseInputMethod(%q) = %v, %v, want Telex", s, m, err)
		}
	}
	for _, s := range []string{"vni", "VNI"} {
		m, err := ParseInputMethod(s)
		if err != nil || m != VNI {
			t.Errorf("ParseInputMethod(%q) = %v, %v, want VNI", s, m, err)
		}
	}
	if _, err := ParseInputMethod("quoc-ngu"); err == nil {
		t.Error("Expected error for unknown method name")
	}
}

func TestPackProcessDigraphFold(t *testing.T) {
	testCases := []struct {
		name      string
		method    InputMethod
		composing string
		key       rune
		want      string
	}{
		{"aw folds", Telex, "a", 'w', "ă"},
		{"aa folds mid-word", Telex, "cha", 'a', "châ"},
		{"dd folds", Telex, "d", 'd', "đ"},
		{"u after consonant appends", Telex, "t", 'u', ""},
		{"vni a8 folds", VNI, "a", '8', "ă"},
		{"vni u7 folds", VNI, "tu", '7', "tư"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPack(tc.method)
			res := p.Process(ime.CharKey(tc.key), tc.composing)
			if tc.want == "" {
				if res.Type != ime.ResultConsumed {
					t.Fatalf("Result = %v, want Consumed", res.Type)
				}
				return
			}
			if res.Type != ime.ResultBufferUpdated {
				t.Fatalf("Result = %v, want BufferUpdated", res.Type)
			}
			if res.Text != tc.want {
				t.Errorf("Text = %q, want %q", res.Text, tc.want)
			}
		})
	}
}

func TestPackProcessToneApplied(t *testing.T) {
	testCases := []struct {
		name      string
		method    InputMethod
		composing string
		key       rune
		want      string
	}{
		{"tone on plain vowel", Telex, "chao", 's', "cháo"},
		{"tone on modified vowel", Telex, "ưn", 'f', "ừn"},
		{"tone replaces earlier tone", Telex, "cháo", 'f', "chào"},
		{"tone keeps leading đ intact", Telex, "đa", 's', "đá"},
		{"vni tone digit", VNI, "chao", '1', "cháo"},
		{"vni tilde", VNI, "a", '4', "ã"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPack(tc.method)
			res := p.Process(ime.CharKey(tc.key), tc.composing)
			if res.Type != ime.ResultBufferUpdated {
				t.Fatalf("Result = %v, want BufferUpdated", res.Type)
			}
			if res.Text != tc.want {
				t.Errorf("Text = %q, want %q", res.Text, tc.want)
			}
		})
	}
}

// A tone key with no vowel to land on stays a literal letter during live
// typing. Batch conversion strips it instead; see the convert tests.
func TestPackProcessToneWithoutVowelConsumed(t *testing.T) {
	testCases := []struct {
		method    InputMethod
		composing string
		key       rune
	}{
		{Telex, "", 's'},
		{Telex, "ch", 's'},
		{Telex, "đ", 'f'},
		{VNI, "ch", '1'},
	}

	for _, tc := range testCases {
		p := NewPack(tc.method)
		res := p.Process(ime.CharKey(tc.key), tc.composing)
		if res.Type != ime.ResultConsumed {
			t.Errorf("Process(%q, %q) = %v, want Consumed", tc.key, tc.composing, res.Type)
		}
	}
}

func TestPackProcessToneRemoval(t *testing.T) {
	p := NewPack(Telex)

	res := p.Process(ime.CharKey('x'), "cháo")
	if res.Type != ime.ResultBufferUpdated || res.Text != "chao" {
		t.Errorf("x after vowel: got %v %q, want BufferUpdated %q", res.Type, res.Text, "chao")
	}

	res = p.Process(ime.CharKey('z'), "ắ")
	if res.Type != ime.ResultBufferUpdated || res.Text != "ă" {
		t.Errorf("z keeps vowel shape: got %v %q, want BufferUpdated %q", res.Type, res.Text, "ă")
	}

	// Not directly after a vowel: x stays a literal letter.
	res = p.Process(ime.CharKey('x'), "")
	if res.Type != ime.ResultConsumed {
		t.Errorf("leading x: got %v, want Consumed", res.Type)
	}
	res = p.Process(ime.CharKey('x'), "ch")
	if res.Type != ime.ResultConsumed {
		t.Errorf("x after consonant: got %v, want Consumed", res.Type)
	}
}

func TestPackProcessWordBreak(t *testing.T) {
	p := NewPack(Telex)

	for _, key := range []rune{' ', '.', ',', '!', '?'} {
		res := p.Process(ime.CharKey(key), "chào")
		if res.Type != ime.ResultReadyToCommit {
			t.Fatalf("key %q: result = %v, want ReadyToCommit", key, res.Type)
		}
		// The break character itself is dropped from the commit.
		if res.Text != "chào" {
			t.Errorf("key %q: text = %q, want %q", key, res.Text, "chào")
		}
	}
}

// Space and tab delivered as control keys, not characters, are declined.
// Only a character keystroke carrying the rune triggers a word break.
func TestPackProcessControlKeysPassThrough(t *testing.T) {
	p := NewPack(Telex)

	for _, k := range []ime.Keystroke{ime.SpaceKey(), ime.TabKey(), ime.UnknownKey(0xffaa)} {
		res := p.Process(k, "chào")
		if res.Type != ime.ResultPassThrough {
			t.Errorf("%s: result = %v, want PassThrough", k, res.Type)
		}
	}
}

func TestPackProcessLowercasesKey(t *testing.T) {
	p := NewPack(Telex)

	res := p.Process(ime.CharKey('W'), "a")
	if res.Type != ime.ResultBufferUpdated || res.Text != "ă" {
		t.Errorf("shifted digraph key: got %v %q, want BufferUpdated %q", res.Type, res.Text, "ă")
	}

	res = p.Process(ime.CharKey('S'), "cha")
	if res.Type != ime.ResultBufferUpdated || res.Text != "chá" {
		t.Errorf("shifted tone key: got %v %q, want BufferUpdated %q", res.Type, res.Text, "chá")
	}
}

type fakeDict struct {
	entries   []ime.Candidate
	err       error
	gotPrefix string
	gotLimit  int
}

func (d *fakeDict) Lookup(prefix string, limit int) ([]ime.Candidate, error) {
	d.gotPrefix, d.gotLimit = prefix, limit
	if d.err != nil {
		return nil, d.err
	}
	return append([]ime.Candidate(nil), d.entries...), nil
}

func TestPackGenerateCandidates(t *testing.T) {
	dict := &fakeDict{entries: []ime.Candidate{
		ime.NewCandidate("chao", "", 0.2),
		ime.NewCandidate("chào", "hello", 0.9),
		ime.NewCandidate("cháo", "porridge", 0.7),
	}}
	p := NewPack(Telex, WithDictionary(dict), WithCandidateLimit(5))

	got := p.GenerateCandidates("cha")
	if dict.gotPrefix != "cha" || dict.gotLimit != 5 {
		t.Errorf("Lookup called with (%q, %d), want (%q, 5)", dict.gotPrefix, dict.gotLimit, "cha")
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(got))
	}
	// Ranked best first.
	if got[0].Text != "chào" || got[1].Text != "cháo" || got[2].Text != "chao" {
		t.Errorf("Unexpected order: %q, %q, %q", got[0].Text, got[1].Text, got[2].Text)
	}
}

type prefixDict struct {
	byPrefix map[string][]ime.Candidate
	prefixes []string
}

func (d *prefixDict) Lookup(prefix string, limit int) ([]ime.Candidate, error) {
	d.prefixes = append(d.prefixes, prefix)
	return append([]ime.Candidate(nil), d.byPrefix[prefix]...), nil
}

// A composed prefix is looked up both as written and in its converted
// form, with duplicates collapsed.
func TestPackGenerateCandidatesConvertedPrefix(t *testing.T) {
	dict := &prefixDict{byPrefix: map[string][]ime.Candidate{
		"chà": {ime.NewCandidate("chào", "hello", 0.9)},
		"cha": {ime.NewCandidate("chào", "hello", 0.9), ime.NewCandidate("chao", "", 0.4)},
	}}
	p := NewPack(Telex, WithDictionary(dict))

	got := p.GenerateCandidates("chà")
	if len(dict.prefixes) != 2 || dict.prefixes[0] != "chà" || dict.prefixes[1] != "cha" {
		t.Fatalf("Lookup prefixes = %q, want [chà cha]", dict.prefixes)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 candidates after dedup, got %d", len(got))
	}
	if got[0].Text != "chào" || got[1].Text != "chao" {
		t.Errorf("Unexpected order: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestPackGenerateCandidatesEdgeCases(t *testing.T) {
	// No dictionary attached.
	if got := NewPack(Telex).GenerateCandidates("cha"); got != nil {
		t.Errorf("Expected nil without dictionary, got %v", got)
	}

	// Empty composing text never hits the dictionary.
	dict := &fakeDict{entries: []ime.Candidate{ime.NewCandidate("x", "", 1)}}
	p := NewPack(Telex, WithDictionary(dict))
	if got := p.GenerateCandidates(""); got != nil {
		t.Errorf("Expected nil for empty prefix, got %v", got)
	}

	// Lookup failures surface as no suggestions.
	p = NewPack(Telex, WithDictionary(&fakeDict{err: errors.New("closed")}))
	if got := p.GenerateCandidates("cha"); got != nil {
		t.Errorf("Expected nil on lookup error, got %v", got)
	}
}

func TestPackDefaultCandidateLimit(t *testing.T) {
	dict := &fakeDict{}
	p := NewPack(Telex, WithDictionary(dict))

	p.GenerateCandidates("a")
	if dict.gotLimit != DefaultCandidateLimit {
		t.Errorf("Lookup limit = %d, want %d", dict.gotLimit, DefaultCandidateLimit)
	}

	// Non-positive overrides are ignored.
	p = NewPack(Telex, WithDictionary(dict), WithCandidateLimit(0))
	p.GenerateCandidates("a")
	if dict.gotLimit != DefaultCandidateLimit {
		t.Errorf("Lookup limit = %d, want %d", dict.gotLimit, DefaultCandidateLimit)
	}
}

func TestPackIsValidComposition(t *testing.T) {
	p := NewPack(Telex)

	testCases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"xin chao", true},
		{"xin chào", true},
		{"đồng", true},
		{"abc123", true},
		{"tab\there", true},
		{"hello@", false},
		{"naïve", false},
		{"日本", false},
	}

	for _, tc := range testCases {
		if got := p.IsValidComposition(tc.in); got != tc.want {
			t.Errorf("IsValidComposition(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// Live typing through an engine, keystroke by keystroke.
func TestPackDrivesEngine(t *testing.T) {
	eng := ime.New()
	eng.SetLanguagePack(NewPack(Telex))

	for _, r := range "chaos" {
		eng.Process(ime.CharKey(r))
	}
	if got := eng.Buffer().Composing(); got != "cháo" {
		t.Fatalf("Composing() = %q, want %q", got, "cháo")
	}

	ev := eng.Process(ime.CharKey(' '))
	if ev.Type != ime.EventCommit || ev.Text != "cháo" {
		t.Fatalf("Space: got %v %q, want Commit %q", ev.Type, ev.Text, "cháo")
	}
	if got := eng.Buffer().Committed(); got != "cháo" {
		t.Errorf("Committed() = %q, want %q", got, "cháo")
	}
	if !eng.IsIdle() {
		t.Error("Engine should be idle after the word-break commit")
	}
}
