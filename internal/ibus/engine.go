//go:build linux

// Package ibus exposes the composition engine to the Linux IBus daemon
// over D-Bus. Each input context gets its own Engine through the
// factory, so every window composes independently.
//
// Log lines carry buffer lengths and event kinds, never composed text.
package ibus

import (
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/hieple7985/hip-key/internal/config"
	"github.com/hieple7985/hip-key/internal/dict"
	"github.com/hieple7985/hip-key/internal/logging"
	"github.com/hieple7985/hip-key/pkg/ime"
	"github.com/hieple7985/hip-key/pkg/vietnamese"
)

// Engine bridges one IBus input context to a core engine instance.
type Engine struct {
	conn   *dbus.Conn
	path   dbus.ObjectPath
	logger *logging.Logger

	mu               sync.Mutex
	core             *ime.Engine
	store            *dict.Store
	commitOnFocusOut bool
	enabled          bool
}

func newEngine(conn *dbus.Conn, path dbus.ObjectPath, cfg *config.Config, store *dict.Store, logger *logging.Logger) *Engine {
	core := ime.New()
	core.SetLanguagePack(newPack(cfg, store))

	return &Engine{
		conn:             conn,
		path:             path,
		logger:           logger,
		core:             core,
		store:            store,
		commitOnFocusOut: cfg.IBus.CommitOnFocusOut,
	}
}

// newPack builds the language pack the config asks for. An unknown
// method name falls back to Telex, matching ParseInputMethod.
func newPack(cfg *config.Config, store *dict.Store) ime.LanguagePack {
	method, _ := vietnamese.ParseInputMethod(cfg.Input.Method)

	var opts []vietnamese.Option
	if store != nil && cfg.Dictionary.Enabled {
		opts = append(opts, vietnamese.WithDictionary(store))
		if cfg.Dictionary.CandidateLimit > 0 {
			opts = append(opts, vietnamese.WithCandidateLimit(cfg.Dictionary.CandidateLimit))
		}
	}

	return vietnamese.NewPack(method, opts...)
}

// SetConfig swaps the language pack after a config reload. Pending
// composition is committed first so no typed text is lost.
func (e *Engine) SetConfig(cfg *config.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.commitPendingLocked()
	e.core.SetLanguagePack(newPack(cfg, e.store))
	e.commitOnFocusOut = cfg.IBus.CommitOnFocusOut
}

// ProcessKeyEvent handles key events from IBus. The boolean reports
// whether the key was consumed; unconsumed keys reach the application.
func (e *Engine) ProcessKeyEvent(keyval, keycode, state uint32) (bool, *dbus.Error) {
	if state&IBusReleaseMask != 0 {
		return false, nil
	}
	// Shortcut chords are never composition input.
	if state&(IBusControlMask|IBusMod1Mask|IBusMod4Mask) != 0 {
		return false, nil
	}

	k, ok := KeystrokeFromKeyval(keyval, state)
	if !ok {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	composingBefore := e.core.Buffer().Composing()
	event := e.core.Process(k)

	e.logger.Debug("key event",
		"keyval", keyval,
		"event", int(event.Type),
		"composing_len", len(e.core.Buffer().Composing()),
	)

	switch event.Type {
	case ime.EventPassThrough:
		return false, nil

	case ime.EventBufferChanged:
		// A backspace with nothing composed belongs to the
		// application, not the preedit.
		if k.IsDeletion() && composingBefore == "" {
			return false, nil
		}
		e.updatePreedit()
		return true, nil

	case ime.EventCandidatesUpdated:
		e.updatePreedit()
		return true, nil

	case ime.EventCommit:
		if k.IsTerminator() {
			// Terminators leave the buffer intact; finalize here so
			// the preedit clears before the key reaches the app.
			e.core.Commit()
		}
		e.commitText(event.Text)
		e.updatePreedit()
		e.bumpFrequency(event.Text)
		// Not consumed: the break or terminator key itself still
		// reaches the application after the committed text.
		return false, nil
	}

	return false, nil
}

// commitPendingLocked flushes any composing text to the application.
func (e *Engine) commitPendingLocked() {
	text := e.core.Commit()
	if text == "" {
		return
	}
	e.commitText(text)
	e.updatePreedit()
	e.bumpFrequency(text)
}

func (e *Engine) commitText(text string) {
	if text == "" {
		return
	}
	if err := e.conn.Emit(e.path, IBusEngineInterface+".CommitText",
		dbus.MakeVariant(newIBusText(text))); err != nil {
		e.logger.Warn("commit text signal failed", "error", err)
	}
}

func (e *Engine) updatePreedit() {
	buf := e.core.Buffer()
	text := buf.Composing()
	cursor := uint32(buf.Cursor())

	if err := e.conn.Emit(e.path, IBusEngineInterface+".UpdatePreeditText",
		dbus.MakeVariant(newIBusText(text)), cursor, text != ""); err != nil {
		e.logger.Warn("preedit signal failed", "error", err)
	}
}

// bumpFrequency feeds committed words back into the dictionary ranking.
func (e *Engine) bumpFrequency(text string) {
	if e.store == nil || text == "" {
		return
	}
	if err := e.store.IncrementFreq(text); err != nil {
		e.logger.Debug("frequency update failed", "error", err)
	}
}

// FocusIn is called when the engine gains input focus.
func (e *Engine) FocusIn() *dbus.Error {
	e.logger.Debug("focus in")
	return nil
}

// FocusOut commits or discards pending composition depending on
// configuration.
func (e *Engine) FocusOut() *dbus.Error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.commitOnFocusOut {
		e.commitPendingLocked()
	} else {
		e.core.Clear()
		e.updatePreedit()
	}

	e.logger.Debug("focus out")
	return nil
}

// Reset discards any composing text.
func (e *Engine) Reset() *dbus.Error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.core.Clear()
	e.updatePreedit()

	e.logger.Debug("reset")
	return nil
}

// Enable is called when the engine is enabled.
func (e *Engine) Enable() *dbus.Error {
	e.mu.Lock()
	e.enabled = true
	e.mu.Unlock()

	e.logger.Debug("enable")
	return nil
}

// Disable commits pending composition and switches the engine off.
func (e *Engine) Disable() *dbus.Error {
	e.mu.Lock()
	e.commitPendingLocked()
	e.enabled = false
	e.mu.Unlock()

	e.logger.Debug("disable")
	return nil
}

// Destroy is called when IBus discards the engine instance.
func (e *Engine) Destroy() *dbus.Error {
	e.mu.Lock()
	e.core.Clear()
	e.mu.Unlock()
	return nil
}

// SetCapabilities informs about client capabilities.
func (e *Engine) SetCapabilities(caps uint32) *dbus.Error {
	return nil
}

// SetContentType informs about the type of content being edited.
func (e *Engine) SetContentType(purpose, hints uint32) *dbus.Error {
	return nil
}

// SetCursorLocation informs about cursor position.
func (e *Engine) SetCursorLocation(x, y, w, h int32) *dbus.Error {
	return nil
}

// SetSurroundingText provides context around the cursor.
func (e *Engine) SetSurroundingText(text string, cursorPos, anchorPos uint32) *dbus.Error {
	return nil
}

// PropertyActivate handles property activations.
func (e *Engine) PropertyActivate(propName string, state uint32) *dbus.Error {
	return nil
}

// PageUp handles page up in the candidate list.
func (e *Engine) PageUp() *dbus.Error {
	return nil
}

// PageDown handles page down in the candidate list.
func (e *Engine) PageDown() *dbus.Error {
	return nil
}

// CursorUp handles cursor up in the candidate list.
func (e *Engine) CursorUp() *dbus.Error {
	return nil
}

// CursorDown handles cursor down in the candidate list.
func (e *Engine) CursorDown() *dbus.Error {
	return nil
}

// CandidateClicked handles candidate selection.
func (e *Engine) CandidateClicked(index, button, state uint32) *dbus.Error {
	return nil
}
