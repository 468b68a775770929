package detector_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractile/internal/adapters/detector"
)

func TestDetectEnvironment(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer file.Close()

	tests := []struct {
		name    string
		ciValue string
		w       io.Writer
	}{
		{name: "buffer", w: new(bytes.Buffer)},
		{name: "regular file", w: file},
		{name: "CI=true forces linear mode", ciValue: "true", w: os.Stdout},
		{name: "CI=1 forces linear mode", ciValue: "1", w: os.Stdout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment(tt.w))
		})
	}
}

func TestTerminalSize_NotATerminal(t *testing.T) {
	cols, rows := detector.TerminalSize(new(bytes.Buffer))
	assert.Zero(t, cols)
	assert.Zero(t, rows)
}
