package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/fractile/internal/adapters/detector"
	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/fractile/internal/ui/output"
)

var _ ports.Viewer = (*Viewer)(nil)

// Viewer implements ports.Viewer with a full-screen bubbletea program.
type Viewer struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption

	requireTerminal bool
}

// NewViewer returns a viewer reading keys from in and drawing to out.
// Nil streams mean stdin and stdout. Without program options out must be an
// interactive terminal.
func NewViewer(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Viewer {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Viewer{in: in, out: out, opts: opts, requireTerminal: len(opts) == 0}
}

// Run blocks until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context, scene ports.Scene) error {
	if v.requireTerminal && detector.DetectEnvironment(v.out) != detector.ModeInteractive {
		return domain.ErrNotInteractive
	}

	termOut := output.New(v.out)
	lipgloss.SetColorProfile(termOut.Profile)

	m := NewModel(scene, termOut)
	m.Cols, m.Rows = detector.TerminalSize(v.out)

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(v.in),
		tea.WithOutput(v.out),
		tea.WithAltScreen(),
	}, v.opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
