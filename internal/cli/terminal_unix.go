//go:build linux || darwin

package cli

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminal handles raw mode for the interactive composer.
type terminal struct {
	fd       int
	original unix.Termios
}

func newTerminal(f *os.File) (*terminal, error) {
	fd := int(f.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	return &terminal{fd: fd, original: *termios}, nil
}

// enterRawMode puts the terminal into raw mode for direct character
// input. VMIN=0/VTIME=1 makes reads time out after 100ms, which lets
// the composer tell a bare Escape press from an escape sequence.
func (t *terminal) enterRawMode() error {
	raw := t.original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	return unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw)
}

// restore restores the original terminal mode.
func (t *terminal) restore() error {
	return unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.original)
}
