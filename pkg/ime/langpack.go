package ime

// DefaultVersion is reported by language packs that do not carry a
// version of their own.
const DefaultVersion = "0.1.0"

// ResultType discriminates the ProcessResult variants.
type ResultType int

const (
	// ResultConsumed accepts the keystroke as a literal character to
	// append to the composing text.
	ResultConsumed ResultType = iota
	// ResultPassThrough declines the keystroke; the platform delivers it
	// to the application unchanged.
	ResultPassThrough
	// ResultBufferUpdated replaces the composing text wholesale.
	ResultBufferUpdated
	// ResultCandidates replaces the engine's candidate list.
	ResultCandidates
	// ResultReadyToCommit finalizes the given text immediately.
	ResultReadyToCommit
)

// ProcessResult is a language pack's verdict on one keystroke. Type
// selects the payload: Text for BufferUpdated and ReadyToCommit,
// Candidates for Candidates. Exactly one verdict is returned per call
// and it fully determines the engine's next action.
type ProcessResult struct {
	Type       ResultType
	Text       string
	Candidates []Candidate
}

// Consumed returns the verdict that appends the keystroke literally.
func Consumed() ProcessResult { return ProcessResult{Type: ResultConsumed} }

// PassThrough returns the verdict that declines the keystroke.
func PassThrough() ProcessResult { return ProcessResult{Type: ResultPassThrough} }

// BufferUpdated returns the verdict that replaces the composing text
// with text. Packs compute the full new composing string, never a delta.
func BufferUpdated(text string) ProcessResult {
	return ProcessResult{Type: ResultBufferUpdated, Text: text}
}

// Candidates returns the verdict that installs list as the engine's
// current suggestions.
func Candidates(list []Candidate) ProcessResult {
	return ProcessResult{Type: ResultCandidates, Candidates: list}
}

// ReadyToCommit returns the verdict that commits text immediately.
func ReadyToCommit(text string) ProcessResult {
	return ProcessResult{Type: ResultReadyToCommit, Text: text}
}

// LanguagePack turns keystrokes into script-specific composition
// updates. Implementations hold no per-call mutable state: one pack
// value may serve many Engine instances concurrently.
type LanguagePack interface {
	// Process interprets one keystroke against the current composing text.
	Process(k Keystroke, composing string) ProcessResult

	// GenerateCandidates returns ranked suggestions for the composing
	// text. It is invoked explicitly, not on every keystroke.
	GenerateCandidates(composing string) []Candidate

	// IsValidComposition reports whether text contains only characters
	// this pack knows how to compose. Advisory: the engine never blocks
	// on it.
	IsValidComposition(text string) bool

	ID() string
	Name() string
	Version() string
}

// BasePack supplies the default pack version. Embed it in packs that do
// not track their own.
type BasePack struct{}

// Version returns DefaultVersion.
func (BasePack) Version() string { return DefaultVersion }
