// Package detector inspects the terminal the process runs in.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode represents how output can be presented.
type OutputMode int

const (
	// ModeLinear means plain lines: no terminal, or a CI runner.
	ModeLinear OutputMode = iota
	// ModeInteractive means a terminal that can host the full-screen viewer.
	ModeInteractive
)

// DetectEnvironment returns the output mode for w.
// It checks if w is a TTY and if CI environment variables are set.
func DetectEnvironment(w io.Writer) OutputMode {
	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTerminal(w) || isCI {
		return ModeLinear
	}
	return ModeInteractive
}

// TerminalSize reports the size of w in cells, or zeros when w is not a
// terminal.
func TerminalSize(w io.Writer) (cols, rows int) {
	if !isTerminal(w) {
		return 0, 0
	}
	cols, rows, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil {
		return 0, 0
	}
	return cols, rows
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
