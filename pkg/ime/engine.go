package ime

import "sync"

// EventType discriminates the engine's outward events.
type EventType int

const (
	// EventPassThrough tells the platform to deliver the keystroke to
	// the application unchanged.
	EventPassThrough EventType = iota
	// EventBufferChanged signals that the composition buffer mutated;
	// read the new state with Engine.Buffer.
	EventBufferChanged
	// EventCandidatesUpdated signals a new suggestion list; read it with
	// Engine.Candidates.
	EventCandidatesUpdated
	// EventCommit carries text the platform should insert into the
	// application.
	EventCommit
)

// Event is the engine's reaction to one keystroke. Text is set for
// EventCommit only.
type Event struct {
	Type EventType
	Text string
}

// Engine routes keystrokes between a platform layer and the active
// language pack. It owns the composition buffer and the candidate list;
// packs never touch either directly.
//
// One engine serves one input context. Calls are serialized by the
// platform layer, but state is still guarded internally so adapters
// whose callbacks arrive on varying threads need no locking of their
// own.
type Engine struct {
	mu         sync.RWMutex
	pack       LanguagePack
	buf        Buffer
	candidates []Candidate
}

// New returns an engine with no language pack loaded. Until a pack is
// set, every non-terminator, non-deletion keystroke passes through.
func New() *Engine {
	return &Engine{}
}

// SetLanguagePack installs pack as the active keystroke interpreter.
// A nil pack returns the engine to pass-through behavior.
func (e *Engine) SetLanguagePack(pack LanguagePack) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pack = pack
}

// LanguagePackID returns the active pack's identifier. The second return
// is false when no pack is loaded.
func (e *Engine) LanguagePackID() (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.pack == nil {
		return "", false
	}
	return e.pack.ID(), true
}

// Process interprets one keystroke and returns the resulting event.
//
// Terminators (Enter, Escape, arrows) surface the composing text in an
// EventCommit without clearing it; finalizing is the platform's call via
// Commit. Deletions apply directly to the buffer. Everything else goes
// to the language pack, whose verdict drives exactly one buffer or
// candidate mutation.
func (e *Engine) Process(k Keystroke) Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	if k.IsTerminator() {
		return Event{Type: EventCommit, Text: e.buf.Composing()}
	}
	if k.IsDeletion() {
		if k.Key.Kind == KeyBackspace {
			e.buf.Backspace()
		} else {
			e.buf.Delete()
		}
		return Event{Type: EventBufferChanged}
	}
	if e.pack == nil {
		return Event{Type: EventPassThrough}
	}

	res := e.pack.Process(k, e.buf.Composing())
	switch res.Type {
	case ResultConsumed:
		// Only character keys carry a rune to append.
		if k.Key.Kind == KeyChar {
			e.buf.Append(k.Key.Rune)
		}
		return Event{Type: EventBufferChanged}
	case ResultBufferUpdated:
		e.buf.SetComposing(res.Text)
		return Event{Type: EventBufferChanged}
	case ResultCandidates:
		e.candidates = append([]Candidate(nil), res.Candidates...)
		return Event{Type: EventCandidatesUpdated}
	case ResultReadyToCommit:
		e.buf.CommitWith(res.Text)
		return Event{Type: EventCommit, Text: res.Text}
	default:
		return Event{Type: EventPassThrough}
	}
}

// Commit finalizes the current composing text regardless of any
// keystroke and returns the text that moved to committed. An idle
// engine returns "".
func (e *Engine) Commit() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Commit()
}

// Buffer returns a point-in-time copy of the composition state.
func (e *Engine) Buffer() Buffer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.snapshot()
}

// Candidates returns a copy of the current suggestion list.
func (e *Engine) Candidates() []Candidate {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Candidate(nil), e.candidates...)
}

// Clear discards the composing text and the candidate list together
// without committing anything.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.Clear()
	e.candidates = nil
}

// IsIdle reports whether no text is being composed.
func (e *Engine) IsIdle() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.IsEmpty()
}
