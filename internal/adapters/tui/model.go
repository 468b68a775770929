// Package tui is an interactive terminal viewer drawing frames with
// half-block characters.
package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/fractile/internal/ui/style"
)

const (
	// PanStep is how far one arrow key press moves the view, in pixels.
	PanStep = 8
	// ZoomSteps is how many zoom steps one +/- press applies.
	ZoomSteps = 4
	// RefreshInterval is how soon an incomplete frame is redrawn.
	RefreshInterval = 10 * time.Millisecond

	halfBlock    = "▀"
	statusHeight = 1
)

type refreshMsg struct{}

// Model is the bubbletea model of the viewer.
type Model struct {
	scene    ports.Scene
	out      *termenv.Output
	spinner  spinner.Model
	interval time.Duration

	// Cols and Rows are the terminal size in cells.
	Cols, Rows int
	img        *image.RGBA
	complete   bool
	scheduled  bool
}

// NewModel returns a viewer model for scene drawing through out.
func NewModel(scene ports.Scene, out *termenv.Output) *Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = style.Muted
	return &Model{
		scene:    scene,
		out:      out,
		spinner:  s,
		interval: RefreshInterval,
	}
}

// PixelSize returns the image size the model renders for its terminal.
func (m *Model) PixelSize() (width, height int) {
	return m.Cols, max(m.Rows-statusHeight, 0) * 2
}

// Init renders immediately when the size is already known.
func (m *Model) Init() tea.Cmd {
	if m.Cols == 0 || m.Rows == 0 {
		return nil
	}
	return m.refresh()
}

// Update handles keys, resizes and refresh ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Cols, m.Rows = msg.Width, msg.Height
		return m, m.refresh()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case refreshMsg:
		m.scheduled = false
		return m, m.refresh()

	case spinner.TickMsg:
		if m.complete {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	w, h := m.PixelSize()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "left", "h":
		m.scene.Pan(PanStep, 0)
	case "right", "l":
		m.scene.Pan(-PanStep, 0)
	case "up", "k":
		m.scene.Pan(0, PanStep)
	case "down", "j":
		m.scene.Pan(0, -PanStep)
	case "+", "=":
		m.scene.Zoom(-ZoomSteps, w, h)
	case "-", "_":
		m.scene.Zoom(ZoomSteps, w, h)
	case "0":
		m.scene.Reset()
	default:
		return nil
	}
	return m.refresh()
}

// refresh renders a frame and schedules another while tiles are still
// being refined.
func (m *Model) refresh() tea.Cmd {
	w, h := m.PixelSize()
	if w == 0 || h == 0 {
		return nil
	}
	wasComplete := m.complete
	m.img, m.complete = m.scene.Render(w, h)
	if m.complete || m.scheduled {
		return nil
	}
	m.scheduled = true
	tick := tea.Tick(m.interval, func(time.Time) tea.Msg { return refreshMsg{} })
	if wasComplete || m.img == nil {
		return tea.Batch(tick, m.spinner.Tick)
	}
	return tick
}

// View draws two image rows per terminal row, then the status line.
func (m *Model) View() string {
	if m.img == nil {
		return "Rendering..."
	}
	var b strings.Builder
	bounds := m.img.Bounds()
	for y := bounds.Min.Y; y+1 < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top, bottom := m.img.RGBAAt(x, y), m.img.RGBAAt(x, y+1)
			b.WriteString(m.out.String(halfBlock).
				Foreground(m.out.Color(hex(top))).
				Background(m.out.Color(hex(bottom))).
				String())
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

func (m *Model) status() string {
	mark := style.Check
	if !m.complete {
		mark = m.spinner.View()
	}
	return fmt.Sprintf("%s %s %s", style.Title.Render("fractile"), mark, style.Muted.Render(m.scene.Status()))
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
