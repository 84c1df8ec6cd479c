//go:build !linux && !darwin

package cli

import (
	"errors"
	"os"
)

type terminal struct{}

func newTerminal(*os.File) (*terminal, error) {
	return nil, errors.New("raw terminal mode is not supported on this platform")
}

func (t *terminal) enterRawMode() error { return nil }

func (t *terminal) restore() error { return nil }
