package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractile/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("rendered 16 tiles") },
			goldenName: "info_basic",
		},
		{
			name:       "multiline info",
			log:        func(l *logger.Logger) { l.Info("frame 1\nframe 2") },
			goldenName: "info_multiline",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("render timed out before the final level") },
			goldenName: "warn_basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_DebugNeedsVerbose(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("pool started with 8 workers")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.Debug("pool started with 8 workers")

	g := goldie.New(t)
	g.Assert(t, "debug_verbose", buf.Bytes())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        errors.New("palette not found"),
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 4: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("permission denied"), "failed to create output file"),
				"failed to export image",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "stdlib chain is printed whole",
			err: fmt.Errorf("failed to render: %w",
				fmt.Errorf("failed to encode: %w", errors.New("short write"))),
			goldenName: "error_chain_stdlib",
		},
		{
			name: "metadata sorted by key",
			err: func() error {
				e := zerr.New("invalid tile edge")
				e = zerr.With(e, "edge", 100)
				e = zerr.With(e, "divisor", 8)
				return e
			}(),
			goldenName: "error_metadata",
		},
		{
			name: "metadata on a cause",
			err: zerr.Wrap(
				zerr.With(zerr.New("bookmark not found"), "name", "seahorse"),
				"failed to load bookmark",
			),
			goldenName: "error_metadata_cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("frame complete")
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "frame complete", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "boom", failure["error"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetJSON(true)
	lg.SetJSON(false)
	lg.Info("back to pretty")

	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg, _ := newTestLogger(t)

	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
