package tui_test

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractile/internal/adapters/tui"
	"go.trai.ch/fractile/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func newModel(t *testing.T) (*tui.Model, *mocks.MockScene) {
	t.Helper()
	ctrl := gomock.NewController(t)
	scene := mocks.NewMockScene(ctrl)
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	return tui.NewModel(scene, out), scene
}

func TestModel_ResizeRendersAtDoubleRowResolution(t *testing.T) {
	m, scene := newModel(t)
	scene.EXPECT().Render(20, 18).Return(solid(20, 18, color.RGBA{A: 0xff}), true)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})

	assert.Nil(t, cmd, "complete frames schedule nothing")
	w, h := m.PixelSize()
	assert.Equal(t, 20, w)
	assert.Equal(t, 18, h)
}

func TestModel_IncompleteFrameSchedulesRefresh(t *testing.T) {
	m, scene := newModel(t)
	scene.EXPECT().Render(4, 4).Return(solid(4, 4, color.RGBA{A: 0xff}), false)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 4, Height: 3})
	require.NotNil(t, cmd)

	gomock.InOrder(
		scene.EXPECT().Pan(tui.PanStep, 0),
		scene.EXPECT().Render(4, 4).Return(solid(4, 4, color.RGBA{R: 1, A: 0xff}), false),
	)
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	assert.Nil(t, again, "only one refresh is pending at a time")
	scene.EXPECT().Status().Return("panned")
	assert.Contains(t, m.View(), "▀▀▀▀", "the pan still redraws")

	scene.EXPECT().Render(4, 4).Return(solid(4, 4, color.RGBA{A: 0xff}), false)
	_, next := m.Update(tui.RefreshMsg())
	assert.NotNil(t, next, "a delivered refresh schedules the next one")
}

func TestModel_KeysDriveTheScene(t *testing.T) {
	tests := []struct {
		key    tea.KeyMsg
		expect func(s *mocks.MockScene)
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, func(s *mocks.MockScene) { s.EXPECT().Pan(tui.PanStep, 0) }},
		{tea.KeyMsg{Type: tea.KeyRight}, func(s *mocks.MockScene) { s.EXPECT().Pan(-tui.PanStep, 0) }},
		{tea.KeyMsg{Type: tea.KeyUp}, func(s *mocks.MockScene) { s.EXPECT().Pan(0, tui.PanStep) }},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, func(s *mocks.MockScene) { s.EXPECT().Pan(0, -tui.PanStep) }},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, func(s *mocks.MockScene) { s.EXPECT().Zoom(float64(-tui.ZoomSteps), 8, 6) }},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")}, func(s *mocks.MockScene) { s.EXPECT().Zoom(float64(tui.ZoomSteps), 8, 6) }},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")}, func(s *mocks.MockScene) { s.EXPECT().Reset() }},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m, scene := newModel(t)
			img := solid(8, 6, color.RGBA{A: 0xff})
			scene.EXPECT().Render(8, 6).Return(img, true).Times(2)
			m.Update(tea.WindowSizeMsg{Width: 8, Height: 4})

			tt.expect(scene)
			m.Update(tt.key)
		})
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m, _ := newModel(t)
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_UnknownKeyIsIgnored(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}

func TestModel_ViewDrawsHalfBlocksAndStatus(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m, scene := newModel(t)
	scene.EXPECT().Render(3, 4).Return(solid(3, 4, color.RGBA{R: 9, A: 0xff}), true)
	scene.EXPECT().Status().Return("scale 0.01")
	m.Update(tea.WindowSizeMsg{Width: 3, Height: 3})

	lines := strings.Split(m.View(), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "▀▀▀", lines[0])
	assert.Equal(t, "▀▀▀", lines[1])
	assert.Contains(t, lines[2], "fractile")
	assert.Contains(t, lines[2], "scale 0.01")
}

func TestModel_ViewBeforeFirstFrame(t *testing.T) {
	m, _ := newModel(t)
	assert.Equal(t, "Rendering...", m.View())
	assert.Nil(t, m.Init())
}
