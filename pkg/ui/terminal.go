package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ClearSequence moves the cursor home and clears the screen.
const ClearSequence = "\033[H\033[J"

// ClearScreen writes ClearSequence to w.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, ClearSequence)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// EnableSingleView switches out to the alternate screen with a hidden cursor and,
// when in is a terminal, disables input echo. The returned func restores everything.
func EnableSingleView(out, in *os.File) func() {
	if !IsTerminal(out) {
		return func() {}
	}

	fmt.Fprint(out, "\033[?1049h") // switch to alternate buffer
	fmt.Fprint(out, "\033[?25l")   // hide cursor

	var restore []func()
	if IsTerminal(in) {
		if undoEcho, err := disableInputEcho(int(in.Fd())); err == nil && undoEcho != nil {
			restore = append(restore, undoEcho)
		}
	}

	return func() {
		for i := len(restore) - 1; i >= 0; i-- {
			restore[i]()
		}
		fmt.Fprint(out, "\033[?25h")   // show cursor
		fmt.Fprint(out, "\033[?1049l") // restore main buffer
	}
}
