package vietnamese

import "strings"

// slot is one position in the tokenized text: the character as currently
// written plus its decomposition.
type slot struct {
	orig rune
	info CharInfo
}

// tokenize scans runes left to right into slots. At each position a
// digraph ending there is folded first; otherwise a tone signal is
// stripped from the letter stream and remembered. Only the last signal
// survives; ok reports whether any signal appeared at all.
func tokenize(runes []rune, method InputMethod) (slots []slot, pending ToneMark, ok bool) {
	digraphs := method.digraphs()
	tones := method.tones()

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i+1 < len(runes) {
			if folded, found := digraphs[[2]rune{r, runes[i+1]}]; found {
				slots = append(slots, slot{orig: folded, info: Decompose(folded)})
				i++
				continue
			}
		}
		if tone, found := tones[r]; found {
			pending, ok = tone, true
			continue
		}
		if method == Telex && isTelexRemoval(r) && lastIsVowel(slots) {
			pending, ok = ToneNone, true
			continue
		}
		slots = append(slots, slot{orig: r, info: Decompose(r)})
	}
	return slots, pending, ok
}

func lastIsVowel(slots []slot) bool {
	return len(slots) > 0 && slots[len(slots)-1].info.CanTakeTone
}

// findToneSlot picks the slot a tone lands on: the first modified vowel
// left to right, else the first plain vowel. Consonants are never
// eligible. Returns -1 when nothing qualifies.
func findToneSlot(slots []slot) int {
	for i, s := range slots {
		if s.info.CanTakeTone && s.info.Mod != ModNone {
			return i
		}
	}
	for i, s := range slots {
		if s.info.CanTakeTone {
			return i
		}
	}
	return -1
}

// render rebuilds text from slots, applying tone to the slot at target
// (-1 for none). Every other slot renders with its modification intact
// and no tone.
func render(slots []slot, target int, tone ToneMark) string {
	var sb strings.Builder
	for i, s := range slots {
		t := ToneNone
		if i == target {
			t = tone
		}
		sb.WriteRune(renderRune(s.orig, s.info, t))
	}
	return sb.String()
}

// Convert transliterates one raw keystroke string in a single pass. Tone
// signals are consumed wherever they appear, and the last one wins even
// when no vowel can take it. Output is always lowercase; input case is
// not preserved.
func Convert(raw string, method InputMethod) string {
	slots, pending, ok := tokenize([]rune(strings.ToLower(raw)), method)
	target := -1
	if ok {
		target = findToneSlot(slots)
	}
	return render(slots, target, pending)
}
