// Package capi is the C-style embedding contract for the engine:
// opaque integer handles, int32 result codes, and no Go types across
// the boundary. Hosts create an engine, hold its handle, and release it
// with Destroy.
//
// Keystroke transport, buffer reads, and candidate retrieval across the
// boundary are not wired up; their entry points validate arguments and
// report NotReady so hosts can already code against the final shape.
package capi

import (
	"sync"

	"github.com/hieple7985/hip-key/pkg/ime"
	"github.com/hieple7985/hip-key/pkg/vietnamese"
)

// ResultCode is the status every boundary call returns.
type ResultCode int32

const (
	Success         ResultCode = 0
	Error           ResultCode = -1
	InvalidArgument ResultCode = -2
	NotReady        ResultCode = -3
)

// Handle identifies one engine instance across the boundary. Zero is
// never a valid handle.
type Handle uint64

var registry = struct {
	sync.Mutex
	next    Handle
	engines map[Handle]*ime.Engine
}{engines: make(map[Handle]*ime.Engine)}

// Create allocates an engine with the Vietnamese Telex pack and returns
// its handle.
func Create() Handle {
	eng := ime.New()
	eng.SetLanguagePack(vietnamese.NewPack(vietnamese.Telex))

	registry.Lock()
	defer registry.Unlock()
	registry.next++
	registry.engines[registry.next] = eng
	return registry.next
}

// Destroy releases the engine behind h. Destroying an unknown or
// already-destroyed handle reports InvalidArgument.
func Destroy(h Handle) ResultCode {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.engines[h]; !ok {
		return InvalidArgument
	}
	delete(registry.engines, h)
	return Success
}

// ProcessKey feeds one key event to the engine behind h.
func ProcessKey(h Handle, keyval int32, state uint32) ResultCode {
	if rc := validate(h); rc != Success {
		return rc
	}
	return NotReady
}

// BufferText reads the composing text of the engine behind h.
func BufferText(h Handle) (string, ResultCode) {
	if rc := validate(h); rc != Success {
		return "", rc
	}
	return "", NotReady
}

// CandidateCount reports how many candidates the engine behind h holds.
func CandidateCount(h Handle) (int32, ResultCode) {
	if rc := validate(h); rc != Success {
		return 0, rc
	}
	return 0, NotReady
}

func validate(h Handle) ResultCode {
	if h == 0 {
		return InvalidArgument
	}
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.engines[h]; !ok {
		return InvalidArgument
	}
	return Success
}
