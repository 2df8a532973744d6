package ui

import (
	"io"

	"github.com/mattn/go-isatty"
)

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsInteractive reports whether w is a terminal (including Cygwin/MSYS
// terminals). Writers without a file descriptor are never interactive.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled reports whether output to w should be colored.
func ColorEnabled(w io.Writer, noColor bool) bool {
	return !noColor && IsInteractive(w)
}
