package app_test

import (
	"bytes"
	"context"
	"image/png"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractile/internal/adapters/bookmarks"
	"go.trai.ch/fractile/internal/adapters/escape"
	"go.trai.ch/fractile/internal/adapters/fs"
	"go.trai.ch/fractile/internal/adapters/linear"
	"go.trai.ch/fractile/internal/adapters/palette"
	"go.trai.ch/fractile/internal/adapters/raster"
	"go.trai.ch/fractile/internal/adapters/telemetry"
	"go.trai.ch/fractile/internal/app"
	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/fractile/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const configPath = "fractile.yaml"

type fixture struct {
	app     *app.App
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
	watcher *mocks.MockWatcher
	viewer  *mocks.MockViewer
	root    string

	mu     sync.Mutex
	debugs []string
}

func newFixture(t *testing.T, tracer ports.Tracer) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		viewer:  mocks.NewMockViewer(ctrl),
		root:    t.TempDir(),
	}
	if tracer == nil {
		tracer = telemetry.NoOpTracer{}
	}
	f.logger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.debugs = append(f.debugs, msg)
	}).AnyTimes()
	f.app = app.New(
		f.loader,
		f.logger,
		tracer,
		escape.Factory{},
		palette.NewRegistry(),
		raster.NewCompositor(),
		raster.NewExporter(),
		bookmarks.NewStore(),
		f.watcher,
		fs.NewHasher(),
		f.viewer,
	).WithRoot(f.root).WithFrameInterval(time.Millisecond)
	return f
}

// smallConfig returns a 32x32 view of the whole set with 16 px tiles.
func (f *fixture) smallConfig() *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Path = filepath.Join(f.root, configPath)
	cfg.Viewport = domain.ViewportConfig{Origin: complex(-2, -2), Scale: 4.0 / 32, Width: 32, Height: 32}
	cfg.Tiles = domain.TileConfig{Edge: 16, Divisors: []int{4, 1}, EvictionFactor: 4, Overview: 8}
	cfg.Workers = 2
	cfg.Evaluator = domain.EvaluatorConfig{MaxIterations: 32, Bands: 16}
	cfg.Output.Path = filepath.Join(f.root, "out.png")
	return cfg
}

func (f *fixture) debugLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.debugs...)
}

func (f *fixture) expectConfig(cfg *domain.Config) {
	f.loader.EXPECT().Load(configPath).Return(cfg, nil)
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestApp_RenderWritesFinalFrame(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		cfg := f.smallConfig()
		f.expectConfig(cfg)
		f.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
			assert.Contains(t, msg, "out.png (32x32")
		})

		summary, err := f.app.Render(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: configPath},
		})

		require.NoError(t, err)
		assert.True(t, summary.Complete)
		assert.GreaterOrEqual(t, summary.Frames, 2)
		assert.Equal(t, cfg.Output.Path, summary.Output)
		assert.NotZero(t, summary.Digest)
		assert.Equal(t, 4, summary.Allocated)
		w, h := decodeSize(t, summary.Output)
		assert.Equal(t, 32, w)
		assert.Equal(t, 32, h)
	})
}

func TestApp_RenderIsDeterministic(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		f.logger.EXPECT().Info(gomock.Any()).Times(2)
		var digests []uint64
		for _, workers := range []int{1, 3} {
			f.expectConfig(f.smallConfig())
			summary, err := f.app.Render(t.Context(), app.RenderOptions{
				ViewOptions: app.ViewOptions{ConfigPath: configPath, Workers: workers},
			})
			require.NoError(t, err)
			digests = append(digests, summary.Digest)
		}
		assert.Equal(t, digests[0], digests[1], "the worker count never changes the image")
	})
}

func TestApp_RenderOverrides(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		f.expectConfig(f.smallConfig())
		f.logger.EXPECT().Info(gomock.Any())
		out := filepath.Join(f.root, "nested", "big.tif")

		summary, err := f.app.Render(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: configPath, Width: 48, Height: 16, Palette: "fire"},
			Output:      out,
			Annotate:    true,
		})

		require.NoError(t, err)
		assert.Equal(t, 48, summary.Width)
		assert.Equal(t, 16, summary.Height)
		assert.FileExists(t, out)
	})
}

func TestApp_RenderDumpsDistinctFrames(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		f.expectConfig(f.smallConfig())
		f.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
			assert.Contains(t, msg, "dumped")
		})
		frames := filepath.Join(f.root, "frames")

		summary, err := f.app.Render(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: configPath},
			FramesDir:   frames,
		})

		require.NoError(t, err)
		assert.GreaterOrEqual(t, summary.Dumped, 2, "at least the overview and the final frame differ")
		assert.LessOrEqual(t, summary.Dumped, summary.Frames)
		entries, err := os.ReadDir(frames)
		require.NoError(t, err)
		assert.Len(t, entries, summary.Dumped)
		assert.Equal(t, "frame-0000.png", entries[0].Name())
	})
}

func TestApp_RenderReplaysScript(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		cfg := f.smallConfig()
		cfg.Script = []domain.Step{
			{Kind: domain.StepPan, DX: 5, DY: -3},
			{Kind: domain.StepZoom, Zoom: -8},
			{Kind: domain.StepZoom, Zoom: 2},
		}
		f.expectConfig(cfg)
		f.logger.EXPECT().Info(gomock.Any())

		summary, err := f.app.Render(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: configPath},
		})

		require.NoError(t, err)
		assert.Greater(t, summary.Frames, len(cfg.Script))
	})
}

func TestApp_RenderTimesOut(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		cfg := f.smallConfig()
		cfg.Tiles.MaxTiles = 1
		f.expectConfig(cfg)

		_, err := f.app.Render(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: configPath},
			Timeout:     50 * time.Millisecond,
		})

		require.ErrorContains(t, err, domain.ErrRenderIncomplete.Error())
		assert.NoFileExists(t, cfg.Output.Path)
	})
}

func TestApp_RenderStopsOnCancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		cfg := f.smallConfig()
		cfg.Tiles.MaxTiles = 1
		f.expectConfig(cfg)
		ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
		defer cancel()

		_, err := f.app.Render(ctx, app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: configPath},
		})

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestApp_RenderReportsPhases(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var buf bytes.Buffer
		provider := telemetry.NewProvider(linear.NewReporter(&buf))
		defer func() { _ = provider.Shutdown(context.Background()) }()
		f := newFixture(t, provider.Tracer())
		f.expectConfig(f.smallConfig())
		f.logger.EXPECT().Info(gomock.Any())

		_, err := f.app.Render(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: configPath},
		})

		require.NoError(t, err)
		out := buf.String()
		for _, phase := range []string{"render out.png", "settle", "export"} {
			assert.Contains(t, out, phase)
		}
		assert.NotContains(t, out, "script", "an empty script is not traced")
	})
}

func TestApp_RenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *domain.Config)
		opts   app.RenderOptions
		want   string
	}{
		{
			name: "unknown palette",
			opts: app.RenderOptions{ViewOptions: app.ViewOptions{Palette: "neon"}},
			want: domain.ErrUnknownPalette.Error(),
		},
		{
			name: "missing bookmark",
			opts: app.RenderOptions{ViewOptions: app.ViewOptions{Bookmark: "nowhere"}},
			want: domain.ErrBookmarkNotFound.Error(),
		},
		{
			name: "unsupported format",
			opts: app.RenderOptions{Format: "gif"},
			want: "unsupported output format",
		},
		{
			name:   "invalid override",
			mutate: func(cfg *domain.Config) { cfg.Tiles.EvictionFactor = 0 },
			want:   domain.ErrInvalidEvictionFactor.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			cfg := f.smallConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			f.expectConfig(cfg)
			tt.opts.ConfigPath = configPath

			_, err := f.app.Render(t.Context(), tt.opts)

			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestApp_RenderWithoutConfigUsesDiscovery(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		found := filepath.Join(f.root, configPath)
		cfg := f.smallConfig()
		f.loader.EXPECT().Discover(f.root).Return(found, nil)
		f.loader.EXPECT().Load(found).Return(cfg, nil)
		f.logger.EXPECT().Info(gomock.Any())

		_, err := f.app.Render(t.Context(), app.RenderOptions{})

		require.NoError(t, err)
	})
}

func TestApp_RenderAtBookmark(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		origin, scale := -0.75, 0.001
		f.loader.EXPECT().Load(configPath).Return(f.smallConfig(), nil).Times(2)
		f.logger.EXPECT().Info(gomock.Any()).Times(2)

		_, err := f.app.SaveBookmark("seahorse", app.BookmarkOptions{
			ConfigPath: configPath,
			OriginX:    &origin,
			Scale:      &scale,
		})
		require.NoError(t, err)

		summary, err := f.app.Render(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: configPath, Bookmark: "seahorse"},
		})
		require.NoError(t, err)
		assert.True(t, summary.Complete)
	})
}

func TestApp_Bookmarks(t *testing.T) {
	f := newFixture(t, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.app.WithClock(func() time.Time { return now })
	f.loader.EXPECT().Load(configPath).Return(f.smallConfig(), nil).Times(2)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)
	y := 0.5

	saved, err := f.app.SaveBookmark("top", app.BookmarkOptions{ConfigPath: configPath, OriginY: &y})
	require.NoError(t, err)
	assert.InDelta(t, -2.0, saved.OriginX, 0)
	assert.InDelta(t, 0.5, saved.OriginY, 0)
	assert.InDelta(t, 4.0/32, saved.Scale, 0)
	assert.Equal(t, now, saved.CreatedAt)

	_, err = f.app.SaveBookmark("home", app.BookmarkOptions{ConfigPath: configPath})
	require.NoError(t, err)

	list, err := f.app.Bookmarks()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "home", list[0].Name)
	assert.Equal(t, "top", list[1].Name)

	got, err := f.app.Bookmark("top")
	require.NoError(t, err)
	assert.Equal(t, saved.Name, got.Name)
	assert.InDelta(t, saved.OriginY, got.OriginY, 0)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))

	_, err = f.app.Bookmark("missing")
	require.ErrorContains(t, err, domain.ErrBookmarkNotFound.Error())
}

func TestApp_SaveBookmarkValidates(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.app.SaveBookmark("", app.BookmarkOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidBookmarkName)

	f.loader.EXPECT().Load(configPath).Return(f.smallConfig(), nil)
	scale := -1.0
	_, err = f.app.SaveBookmark("bad", app.BookmarkOptions{ConfigPath: configPath, Scale: &scale})
	require.ErrorContains(t, err, domain.ErrInvalidScale.Error())
}

func events(evs ...ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, ev := range evs {
			if !yield(ev) {
				return
			}
		}
	}
}

func TestApp_WatchRerendersOnChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		path := filepath.Join(f.root, configPath)
		f.loader.EXPECT().Discover(f.root).Return(path, nil)
		f.loader.EXPECT().Load(path).Return(f.smallConfig(), nil).Times(2)
		f.watcher.EXPECT().Start(gomock.Any(), path).Return(nil)
		f.watcher.EXPECT().Events().Return(events(
			ports.WatchEvent{Path: path, Operation: ports.OpRemove},
			ports.WatchEvent{Path: path, Operation: ports.OpWrite},
		))
		f.watcher.EXPECT().Stop().Return(nil)

		var infos []string
		f.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { infos = append(infos, msg) }).AnyTimes()
		f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
			assert.Contains(t, msg, "removed")
		})

		require.NoError(t, f.app.Watch(t.Context(), app.RenderOptions{}))

		var wrote int
		for _, msg := range infos {
			if strings.HasPrefix(msg, "wrote ") {
				wrote++
			}
		}
		assert.Equal(t, 2, wrote)
	})
}

func TestApp_WatchKeepsGoingAfterFailedRender(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		bad := f.smallConfig()
		bad.Palette = "neon"
		f.loader.EXPECT().Load(configPath).Return(bad, nil)
		f.loader.EXPECT().Load(configPath).Return(f.smallConfig(), nil)
		f.watcher.EXPECT().Start(gomock.Any(), configPath).Return(nil)
		f.watcher.EXPECT().Events().Return(events(ports.WatchEvent{Path: configPath, Operation: ports.OpWrite}))
		f.watcher.EXPECT().Stop().Return(nil)
		f.logger.EXPECT().Error(gomock.Any())
		f.logger.EXPECT().Info(gomock.Any()).Times(2)

		require.NoError(t, f.app.Watch(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: configPath},
		}))
	})
}

func TestApp_WatchNeedsAConfigFile(t *testing.T) {
	f := newFixture(t, nil)
	f.loader.EXPECT().Discover(f.root).Return("", domain.ErrConfigNotFound)

	err := f.app.Watch(t.Context(), app.RenderOptions{})

	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestApp_ExploreDrivesScene(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		f.expectConfig(f.smallConfig())
		f.viewer.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, scene ports.Scene) error {
			img, complete := scene.Render(32, 32)
			require.NotNil(t, img)
			assert.False(t, complete)
			for !complete {
				synctest.Wait()
				img, complete = scene.Render(32, 32)
			}
			before := append([]uint8(nil), img.Pix...)

			scene.Zoom(-4, 32, 32)
			assert.Contains(t, scene.Status(), "classic")
			_, complete = scene.Render(32, 32)
			assert.False(t, complete, "zooming drops every tile")

			scene.Pan(3, 3)
			scene.Reset()
			for !complete {
				synctest.Wait()
				img, complete = scene.Render(32, 32)
			}
			assert.Equal(t, before, img.Pix, "reset returns to the initial view")
			return nil
		})

		require.NoError(t, f.app.Explore(t.Context(), app.ViewOptions{ConfigPath: configPath}))
	})
}

func TestApp_WatchSkipsUnchangedContent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		path := filepath.Join(f.root, configPath)
		require.NoError(t, os.WriteFile(path, []byte("palette: fire\n"), 0o600))
		f.loader.EXPECT().Load(path).Return(f.smallConfig(), nil)
		f.watcher.EXPECT().Start(gomock.Any(), path).Return(nil)
		f.watcher.EXPECT().Events().Return(events(
			ports.WatchEvent{Path: path, Operation: ports.OpWrite},
			ports.WatchEvent{Path: path, Operation: ports.OpCreate},
		))
		f.watcher.EXPECT().Stop().Return(nil)
		f.logger.EXPECT().Info(gomock.Any()).Times(2)

		require.NoError(t, f.app.Watch(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: path},
		}))
	})
}

func TestApp_WatchLogsUnreadableConfig(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, nil)
		path := filepath.Join(f.root, "missing.yaml")
		f.loader.EXPECT().Load(path).Return(f.smallConfig(), nil).Times(2)
		f.watcher.EXPECT().Start(gomock.Any(), path).Return(nil)
		f.watcher.EXPECT().Events().Return(events(ports.WatchEvent{Path: path, Operation: ports.OpWrite}))
		f.watcher.EXPECT().Stop().Return(nil)
		f.logger.EXPECT().Info(gomock.Any()).Times(3)

		require.NoError(t, f.app.Watch(t.Context(), app.RenderOptions{
			ViewOptions: app.ViewOptions{ConfigPath: path},
		}))

		var failures int
		for _, msg := range f.debugLines() {
			if strings.HasPrefix(msg, "cannot hash missing.yaml") {
				failures++
			}
		}
		assert.Equal(t, 2, failures, "both the initial and the event hash are reported")
	})
}
