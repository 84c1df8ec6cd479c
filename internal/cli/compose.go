package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hieple7985/hip-key/pkg/ime"
	"github.com/hieple7985/hip-key/pkg/vietnamese"
)

func init() {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Interactive keystroke-level composer",
		Long: "Compose Vietnamese text keystroke by keystroke, the way an " +
			"input context sees it. The underlined segment is the composition " +
			"in progress; space, Enter, Escape, and arrow keys commit it. " +
			"Ctrl-C or Ctrl-D quits.",
		Run: runCompose,
	}

	RootCmd.AddCommand(cmd)
}

func runCompose(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	method := inputMethod(cfg)

	term, err := newTerminal(os.Stdin)
	if err != nil {
		exitErr("terminal", err)
	}
	if err := term.enterRawMode(); err != nil {
		exitErr("raw mode", err)
	}
	defer term.restore()

	eng := ime.New()
	eng.SetLanguagePack(vietnamese.NewPack(method))

	fmt.Printf("hipkey composer (%s), Ctrl-C quits\r\n", cfg.Method())

	// line is the text the host application would have received so far.
	// The engine only ever hands over committed words; break keys and
	// passed-through keys land here directly, as they would in a real
	// input context.
	var line string
	buf := make([]byte, 1)

	for {
		k, quit, ok := readKeystroke(os.Stdin, buf)
		if quit {
			break
		}
		if !ok {
			continue
		}

		event := eng.Process(k)
		switch event.Type {
		case ime.EventCommit:
			if k.IsTerminator() {
				eng.Commit()
			}
			line += event.Text
			if k.Key.Kind == ime.KeyChar {
				line += string(k.Key.Rune)
			}
			if k.Key.Kind == ime.KeyEnter {
				redraw(line, "")
				fmt.Print("\r\n")
				line = ""
			}
		case ime.EventPassThrough:
			if k.Key.Kind == ime.KeyChar {
				line += string(k.Key.Rune)
			}
		}

		redraw(line, eng.Buffer().Composing())
	}

	fmt.Print("\r\n")
}

const (
	clearLine    = "\033[2K"
	underlineOn  = "\033[4m"
	underlineOff = "\033[24m"
)

func redraw(line, composing string) {
	fmt.Printf("\r%s%s%s%s%s", clearLine, line, underlineOn, composing, underlineOff)
}

// readKeystroke blocks for the next keystroke. quit is set on Ctrl-C,
// Ctrl-D, or a read error; ok is false for bytes with no keystroke
// mapping.
func readKeystroke(in *os.File, buf []byte) (k ime.Keystroke, quit, ok bool) {
	b, alive := readByte(in, buf)
	if !alive {
		return ime.Keystroke{}, true, false
	}

	switch {
	case b == 0x03 || b == 0x04:
		return ime.Keystroke{}, true, false
	case b == 0x7f || b == 0x08:
		return ime.BackspaceKey(), false, true
	case b == '\r' || b == '\n':
		return ime.EnterKey(), false, true
	case b == '\t':
		return ime.TabKey(), false, true
	case b == 0x1b:
		return readEscapeSequence(in, buf)
	case b >= 0x20 && b < 0x7f:
		return ime.CharKey(rune(b)), false, true
	default:
		return ime.Keystroke{}, false, false
	}
}

// readEscapeSequence distinguishes a bare Escape press from the CSI
// sequences terminals send for arrows and Delete. The 100ms VTIME read
// timeout is what makes the bare press detectable.
func readEscapeSequence(in *os.File, buf []byte) (ime.Keystroke, bool, bool) {
	b, got := tryReadByte(in, buf)
	if !got {
		return ime.EscapeKey(), false, true
	}
	if b != '[' {
		// Alt-chorded key; swallow it.
		return ime.Keystroke{}, false, false
	}

	b, got = tryReadByte(in, buf)
	if !got {
		return ime.EscapeKey(), false, true
	}

	switch b {
	case 'A':
		return ime.ArrowKey(ime.ArrowUp), false, true
	case 'B':
		return ime.ArrowKey(ime.ArrowDown), false, true
	case 'C':
		return ime.ArrowKey(ime.ArrowRight), false, true
	case 'D':
		return ime.ArrowKey(ime.ArrowLeft), false, true
	case '3':
		tryReadByte(in, buf) // trailing '~'
		return ime.DeleteKey(), false, true
	default:
		return ime.Keystroke{}, false, false
	}
}

// readByte loops past VTIME timeout ticks until a byte arrives. The
// second return is false on read errors.
func readByte(in *os.File, buf []byte) (byte, bool) {
	for {
		n, err := in.Read(buf)
		if err != nil {
			return 0, false
		}
		if n == 0 {
			continue
		}
		return buf[0], true
	}
}

// tryReadByte reads one byte or gives up at the first timeout.
func tryReadByte(in *os.File, buf []byte) (byte, bool) {
	n, err := in.Read(buf)
	if err != nil || n == 0 {
		return 0, false
	}
	return buf[0], true
}
