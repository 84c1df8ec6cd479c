// Package vietnamese implements the Vietnamese language pack: Telex and
// VNI transliteration over the engine's composition buffer, plus
// dictionary-backed suggestions.
//
// The same tokenizer serves two entry points. Convert transliterates a
// complete raw string in one pass. Pack.Process consumes one keystroke
// against the current composing text and answers with a full-buffer
// rewrite or a commit signal, which is how the engine drives live
// typing. The two must agree wherever both apply; the known difference
// is that a tone key with no eligible vowel stays literal under Process
// but is still stripped by Convert.
package vietnamese

import (
	"unicode"

	"github.com/hieple7985/hip-key/pkg/ime"
)

// Dictionary supplies ranked suggestions for a composed prefix. The
// sqlite-backed store in internal/dict satisfies this.
type Dictionary interface {
	Lookup(prefix string, limit int) ([]ime.Candidate, error)
}

// DefaultCandidateLimit caps suggestion lookups when no override is
// given.
const DefaultCandidateLimit = 8

// Pack is the Vietnamese language pack. It holds no per-keystroke state.
// The composing text handed to Process is the only context, so one Pack
// value may serve any number of engines concurrently.
type Pack struct {
	ime.BasePack
	method InputMethod
	dict   Dictionary
	limit  int
}

// Option configures a Pack at construction.
type Option func(*Pack)

// WithDictionary attaches a suggestion source.
func WithDictionary(d Dictionary) Option {
	return func(p *Pack) { p.dict = d }
}

// WithCandidateLimit caps the number of suggestions per lookup.
func WithCandidateLimit(n int) Option {
	return func(p *Pack) {
		if n > 0 {
			p.limit = n
		}
	}
}

// NewPack returns a pack using the given input method.
func NewPack(method InputMethod, opts ...Option) *Pack {
	p := &Pack{method: method, limit: DefaultCandidateLimit}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the pack identifier.
func (p *Pack) ID() string { return "vi" }

// Name returns the human-readable pack name.
func (p *Pack) Name() string { return "Vietnamese" }

// Method returns the reserved-key grammar in use.
func (p *Pack) Method() InputMethod { return p.method }

// Process interprets one keystroke against the composing text. Control
// keys are declined; the engine has already routed terminators and
// deletions before the pack sees anything.
func (p *Pack) Process(k ime.Keystroke, composing string) ime.ProcessResult {
	if k.Key.Kind != ime.KeyChar {
		return ime.PassThrough()
	}
	key := unicode.ToLower(k.Key.Rune)
	runes := []rune(composing)

	// A digraph ending at the new key folds the last composed character.
	if len(runes) > 0 {
		last := unicode.ToLower(runes[len(runes)-1])
		if folded, ok := p.method.digraphs()[[2]rune{last, key}]; ok {
			return ime.BufferUpdated(string(runes[:len(runes)-1]) + string(folded))
		}
	}

	// Tone signals reach back into the already-composed text. With no
	// eligible vowel yet, the key falls through to a literal append.
	if tone, ok := p.method.tones()[key]; ok {
		if text, applied := applyTone(runes, tone); applied {
			return ime.BufferUpdated(text)
		}
		return ime.Consumed()
	}
	if p.method == Telex && isTelexRemoval(key) && endsInVowel(runes) {
		if text, applied := applyTone(runes, ToneNone); applied {
			return ime.BufferUpdated(text)
		}
		return ime.Consumed()
	}

	if isWordBreak(key) {
		return ime.ReadyToCommit(composing)
	}
	return ime.Consumed()
}

// applyTone decomposes the composed runes, lands tone on the priority
// slot, and re-renders the whole text. applied is false when no slot can
// take a tone.
func applyTone(runes []rune, tone ToneMark) (text string, applied bool) {
	slots := make([]slot, len(runes))
	for i, r := range runes {
		slots[i] = slot{orig: r, info: Decompose(r)}
	}
	target := findToneSlot(slots)
	if target < 0 {
		return "", false
	}
	return render(slots, target, tone), true
}

func endsInVowel(runes []rune) bool {
	return len(runes) > 0 && Decompose(runes[len(runes)-1]).CanTakeTone
}

// isWordBreak reports whether r ends the current word: any whitespace,
// or ASCII punctuation.
func isWordBreak(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch {
	case r >= '!' && r <= '/',
		r >= ':' && r <= '@',
		r >= '[' && r <= '`',
		r >= '{' && r <= '~':
		return true
	}
	return false
}

// GenerateCandidates returns dictionary suggestions for the composing
// text, best first. The text is looked up as written and, when the
// batch conversion yields something different, in that form too, so a
// prefix with pending signal characters still finds its words. Without
// a dictionary, or when the lookup fails, there are no suggestions.
func (p *Pack) GenerateCandidates(composing string) []ime.Candidate {
	if p.dict == nil || composing == "" {
		return nil
	}
	list, err := p.dict.Lookup(composing, p.limit)
	if err != nil {
		return nil
	}

	if converted := Convert(composing, p.method); converted != composing && converted != "" {
		if extra, err := p.dict.Lookup(converted, p.limit); err == nil {
			for _, c := range extra {
				if !containsCandidate(list, c) {
					list = append(list, c)
				}
			}
		}
	}

	ime.SortCandidates(list)
	if len(list) > p.limit {
		list = list[:p.limit]
	}
	return list
}

func containsCandidate(list []ime.Candidate, c ime.Candidate) bool {
	for _, have := range list {
		if have.Equal(c) {
			return true
		}
	}
	return false
}

// IsValidComposition reports whether text contains only characters the
// pack can compose: ASCII alphanumerics, ASCII whitespace, and the
// precomposed Vietnamese set.
func (p *Pack) IsValidComposition(text string) bool {
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ' ', r == '\t', r == '\n', r == '\v', r == '\f', r == '\r':
		default:
			if _, ok := decomposeTable[r]; !ok {
				return false
			}
		}
	}
	return true
}
