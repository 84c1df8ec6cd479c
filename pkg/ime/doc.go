// Package ime provides the core input-method engine: keystroke routing,
// composition buffering, and the language-pack contract.
//
// # Architecture Overview
//
// A platform layer (IBus on Linux, a terminal composer, or an embedding
// host) feeds one Keystroke per physical key event into the Engine. The
// Engine handles terminators and deletions itself and delegates everything
// else to the active LanguagePack, which decides what the key means for the
// current composing text. The pack's ProcessResult drives exactly one
// buffer mutation and one outward Event:
//
//	Platform ──Keystroke──▶ Engine ──(composing text)──▶ LanguagePack
//	    ▲                     │                              │
//	    │                     ▼                              ▼
//	  Event ◀──────────── Buffer/candidates ◀───────── ProcessResult
//
// The Engine never interprets script-specific rules; a pack never touches
// the Buffer. That split keeps packs substitutable: any type satisfying
// LanguagePack can be installed with SetLanguagePack, and the Engine's
// behavior stays fully determined by the ProcessResult variants.
//
// # Composition Model
//
// Buffer separates committed text (finalized, never altered again) from
// composing text (still revisable). Terminator keys (Enter, Escape,
// arrows) surface the composing text in a Commit event but leave the
// buffer untouched; finalizing is the platform's call via Engine.Commit.
// Word-break commits signaled by the pack (ReadyToCommit) move the text to
// committed immediately.
//
// All cursor and deletion arithmetic is rune-based so precomposed
// characters such as "ă" behave as single units.
//
// One Engine instance owns one Buffer and is driven by one serialized
// event stream. State is still guarded internally, so platform adapters
// whose callbacks arrive on varying threads need no extra locking.
package ime
