package ime

// Buffer holds composition state: text already committed to the host
// application and text still being composed, with a rune-based cursor
// into the composing segment. Committed text only grows; composing text
// is the mutable working area. The zero value is an empty buffer ready
// to use.
//
// All positions count runes, not bytes, so precomposed characters such
// as "ă" move and delete as single units.
type Buffer struct {
	committed string
	composing []rune
	cursor    int
}

// Append inserts r at the cursor and advances the cursor past it.
func (b *Buffer) Append(r rune) {
	tail := append([]rune{r}, b.composing[b.cursor:]...)
	b.composing = append(b.composing[:b.cursor], tail...)
	b.cursor++
}

// Backspace removes the rune immediately before the cursor. It is a
// no-op when the cursor is at the start.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.composing = append(b.composing[:b.cursor-1], b.composing[b.cursor:]...)
	b.cursor--
}

// Delete removes the rune at the cursor. It is a no-op when the cursor
// is at the end.
func (b *Buffer) Delete() {
	if b.cursor >= len(b.composing) {
		return
	}
	b.composing = append(b.composing[:b.cursor], b.composing[b.cursor+1:]...)
}

// Commit moves the composing text to committed and returns the text that
// moved. Empty composing text is a no-op returning "".
func (b *Buffer) Commit() string {
	if len(b.composing) == 0 {
		return ""
	}
	text := string(b.composing)
	b.committed += text
	b.composing = nil
	b.cursor = 0
	return text
}

// CommitWith commits text in place of whatever is composing: the prior
// composing runes are discarded, text is appended to committed, and the
// composing segment resets to empty.
func (b *Buffer) CommitWith(text string) {
	b.committed += text
	b.composing = nil
	b.cursor = 0
}

// SetComposing replaces the composing text wholesale and places the
// cursor at its end. Full-buffer rewrites from a language pack land here.
func (b *Buffer) SetComposing(text string) {
	b.composing = []rune(text)
	b.cursor = len(b.composing)
}

// Clear discards the composing text without committing it.
func (b *Buffer) Clear() {
	b.composing = nil
	b.cursor = 0
}

// MoveCursor sets the cursor position, clamping to the composing bounds.
func (b *Buffer) MoveCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.composing) {
		pos = len(b.composing)
	}
	b.cursor = pos
}

// Committed returns the finalized text.
func (b Buffer) Committed() string { return b.committed }

// Composing returns the in-progress text.
func (b Buffer) Composing() string { return string(b.composing) }

// Cursor returns the cursor position in runes from the start of the
// composing text.
func (b Buffer) Cursor() int { return b.cursor }

// Len returns the rune count of the composing text.
func (b Buffer) Len() int { return len(b.composing) }

// IsEmpty reports whether no text is being composed.
func (b Buffer) IsEmpty() bool { return len(b.composing) == 0 }

// snapshot returns a copy whose composing slice shares no storage with
// the original.
func (b Buffer) snapshot() Buffer {
	b.composing = append([]rune(nil), b.composing...)
	return b
}
