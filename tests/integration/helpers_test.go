//go:build integration

// Package integration provides end-to-end tests for hipkey: typing
// flows through the engine and language pack, dictionary-backed
// candidate lookups, and configuration reloads.
//
// Run with: go test -tags=integration ./tests/integration/...
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hieple7985/hip-key/internal/config"
	"github.com/hieple7985/hip-key/internal/dict"
	"github.com/hieple7985/hip-key/pkg/ime"
	"github.com/hieple7985/hip-key/pkg/vietnamese"
)

// TestEnv holds the components a full typing flow needs.
type TestEnv struct {
	t      *testing.T
	Dir    string
	Config *config.Config
	Store  *dict.Store
	Engine *ime.Engine
	Pack   *vietnamese.Pack
}

func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HIPKEY_DATA_DIR", dir)

	cfg := config.DefaultConfig()
	cfg.Dictionary.Path = filepath.Join(dir, "dict.db")

	store, err := dict.Open(cfg.Dictionary.Path)
	AssertNoError(t, err, "open dictionary")

	return &TestEnv{
		t:      t,
		Dir:    dir,
		Config: cfg,
		Store:  store,
		Engine: ime.New(),
	}
}

// UseTelex installs a Telex pack backed by the env dictionary.
func (env *TestEnv) UseTelex() { env.usePack(vietnamese.Telex) }

// UseVNI installs a VNI pack backed by the env dictionary.
func (env *TestEnv) UseVNI() { env.usePack(vietnamese.VNI) }

func (env *TestEnv) usePack(method vietnamese.InputMethod) {
	env.Pack = vietnamese.NewPack(method, vietnamese.WithDictionary(env.Store))
	env.Engine.SetLanguagePack(env.Pack)
}

// Type feeds each rune of s as a character keystroke and returns the
// last event.
func (env *TestEnv) Type(s string) ime.Event {
	var last ime.Event
	for _, r := range s {
		last = env.Engine.Process(ime.CharKey(r))
	}
	return last
}

// Composing returns the engine's in-progress text.
func (env *TestEnv) Composing() string {
	return env.Engine.Buffer().Composing()
}

// Committed returns the engine's finalized text.
func (env *TestEnv) Committed() string {
	return env.Engine.Buffer().Committed()
}

// Seed loads words into the dictionary.
func (env *TestEnv) Seed(words map[string]int64) {
	env.t.Helper()
	for word, freq := range words {
		_, err := env.Store.Add(word, "", freq)
		AssertNoError(env.t, err, "seed "+word)
	}
}

func (env *TestEnv) Cleanup() {
	if env.Store != nil {
		env.Store.Close()
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// =============================================================================
// Assertions
// =============================================================================

func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", msg, err)
	}
}

func AssertEqual[T comparable](t *testing.T, expected, actual T, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatalf("%s: expected true", msg)
	}
}

func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Fatalf("%s: expected false", msg)
	}
}
