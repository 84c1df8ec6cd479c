package ime

import "testing"

func TestBufferAppend(t *testing.T) {
	var b Buffer

	for _, r := range "chao" {
		b.Append(r)
	}
	if got := b.Composing(); got != "chao" {
		t.Errorf("Composing() = %q, want %q", got, "chao")
	}
	if b.Cursor() != 4 {
		t.Errorf("Cursor() = %d, want 4", b.Cursor())
	}

	// Insert mid-buffer: cursor advances past the inserted rune only.
	b.MoveCursor(1)
	b.Append('x')
	if got := b.Composing(); got != "cxhao" {
		t.Errorf("After mid-buffer insert: %q, want %q", got, "cxhao")
	}
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", b.Cursor())
	}
}

func TestBufferAppendMultibyte(t *testing.T) {
	var b Buffer

	b.Append('ă')
	b.Append('n')
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2 runes", b.Len())
	}

	b.Backspace()
	if got := b.Composing(); got != "ă" {
		t.Errorf("Backspace should remove one rune: got %q", got)
	}
	b.Backspace()
	if !b.IsEmpty() {
		t.Error("Expected empty buffer after removing both runes")
	}
}

func TestBufferBackspace(t *testing.T) {
	var b Buffer

	// No-op on empty buffer.
	b.Backspace()
	if !b.IsEmpty() || b.Cursor() != 0 {
		t.Error("Backspace on empty buffer should be a no-op")
	}

	b.SetComposing("abc")
	b.MoveCursor(0)
	b.Backspace()
	if got := b.Composing(); got != "abc" {
		t.Errorf("Backspace at cursor 0 should be a no-op: got %q", got)
	}

	b.MoveCursor(2)
	b.Backspace()
	if got := b.Composing(); got != "ac" {
		t.Errorf("Composing() = %q, want %q", got, "ac")
	}
	if b.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", b.Cursor())
	}
}

func TestBufferDelete(t *testing.T) {
	var b Buffer

	b.SetComposing("abc")

	// Cursor sits at the end after SetComposing, so Delete is a no-op.
	b.Delete()
	if got := b.Composing(); got != "abc" {
		t.Errorf("Delete at end should be a no-op: got %q", got)
	}

	b.MoveCursor(1)
	b.Delete()
	if got := b.Composing(); got != "ac" {
		t.Errorf("Composing() = %q, want %q", got, "ac")
	}
	if b.Cursor() != 1 {
		t.Errorf("Delete should not move the cursor: got %d", b.Cursor())
	}
}

func TestBufferCommit(t *testing.T) {
	var b Buffer

	if got := b.Commit(); got != "" {
		t.Errorf("Commit on empty buffer = %q, want empty", got)
	}
	if b.Committed() != "" {
		t.Error("Empty commit should not touch committed text")
	}

	b.SetComposing("xin")
	if got := b.Commit(); got != "xin" {
		t.Errorf("Commit() = %q, want %q", got, "xin")
	}
	if b.Committed() != "xin" {
		t.Errorf("Committed() = %q, want %q", b.Committed(), "xin")
	}
	if !b.IsEmpty() || b.Cursor() != 0 {
		t.Error("Commit should reset the composing segment")
	}

	// Committed text accumulates across commits.
	b.SetComposing(" chào")
	b.Commit()
	if got := b.Committed(); got != "xin chào" {
		t.Errorf("Committed() = %q, want %q", got, "xin chào")
	}
}

func TestBufferCommitWith(t *testing.T) {
	var b Buffer

	b.SetComposing("aw")
	b.CommitWith("ă")

	if got := b.Committed(); got != "ă" {
		t.Errorf("Committed() = %q, want %q", got, "ă")
	}
	if !b.IsEmpty() {
		t.Error("CommitWith should discard prior composing text")
	}
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", b.Cursor())
	}
}

func TestBufferSetComposing(t *testing.T) {
	var b Buffer

	b.SetComposing("chào")
	if got := b.Composing(); got != "chào" {
		t.Errorf("Composing() = %q, want %q", got, "chào")
	}
	if b.Cursor() != 4 {
		t.Errorf("Cursor should land at the end: got %d, want 4", b.Cursor())
	}
}

func TestBufferClear(t *testing.T) {
	var b Buffer

	b.SetComposing("abc")
	b.Clear()

	if !b.IsEmpty() || b.Cursor() != 0 {
		t.Error("Clear should empty the composing segment")
	}
	if b.Committed() != "" {
		t.Error("Clear must not commit anything")
	}
}

func TestBufferMoveCursorClamps(t *testing.T) {
	var b Buffer

	b.SetComposing("ab")
	b.MoveCursor(-3)
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 after clamping below", b.Cursor())
	}
	b.MoveCursor(99)
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2 after clamping above", b.Cursor())
	}
}

// The cursor must stay within the composing bounds after every mutation,
// whatever order the operations arrive in.
func TestBufferCursorInvariant(t *testing.T) {
	var b Buffer

	ops := []func(){
		func() { b.Append('a') },
		func() { b.Backspace() },
		func() { b.Append('b') },
		func() { b.Append('c') },
		func() { b.MoveCursor(1) },
		func() { b.Delete() },
		func() { b.Delete() },
		func() { b.Delete() },
		func() { b.Backspace() },
		func() { b.Backspace() },
		func() { b.Append('d') },
		func() { b.Commit() },
		func() { b.Backspace() },
		func() { b.Append('e') },
		func() { b.Clear() },
		func() { b.Delete() },
	}

	for i, op := range ops {
		op()
		if b.Cursor() > b.Len() {
			t.Fatalf("op %d: cursor %d exceeds composing length %d", i, b.Cursor(), b.Len())
		}
		if b.Cursor() < 0 {
			t.Fatalf("op %d: cursor went negative: %d", i, b.Cursor())
		}
	}
}

func TestBufferSnapshotIsolation(t *testing.T) {
	var b Buffer
	b.SetComposing("ab")

	snap := b.snapshot()
	b.Append('c')

	if got := snap.Composing(); got != "ab" {
		t.Errorf("Snapshot changed after source mutation: got %q", got)
	}
}
