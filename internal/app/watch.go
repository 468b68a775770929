package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/zerr"
)

// Watch renders once, then again every time the config file changes, until
// ctx is cancelled. Render failures are logged and do not stop watching.
// Writes that leave the content unchanged are ignored.
func (a *App) Watch(ctx context.Context, opts RenderOptions) error {
	path, err := a.configPath(opts.ConfigPath)
	if err != nil {
		return err
	}
	if path == "" {
		root, err := a.rootDir()
		if err != nil {
			return err
		}
		return zerr.With(domain.ErrConfigNotFound, "cwd", root)
	}
	opts.ConfigPath = path

	if err := a.watcher.Start(ctx, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", path)
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	last, err := a.hasher.ComputeFileHash(path)
	if err != nil {
		a.logger.Debug("cannot hash " + filepath.Base(path) + ": " + err.Error())
	}
	a.renderLogged(ctx, opts)
	a.logger.Info("watching " + filepath.Base(path) + " for changes")

	for ev := range a.watcher.Events() {
		if ev.Operation == ports.OpRemove {
			a.logger.Warn(filepath.Base(ev.Path) + " was removed, waiting for it to come back")
			continue
		}
		hash, err := a.hasher.ComputeFileHash(path)
		if err != nil {
			a.logger.Debug("cannot hash " + filepath.Base(path) + ": " + err.Error())
		}
		if err == nil && hash == last {
			a.logger.Debug(filepath.Base(path) + " unchanged, skipping render")
			continue
		}
		last = hash
		a.renderLogged(ctx, opts)
	}
	return nil
}

func (a *App) renderLogged(ctx context.Context, opts RenderOptions) {
	if _, err := a.Render(ctx, opts); err != nil {
		if ctx.Err() != nil {
			return
		}
		a.logger.Error(err)
	}
}
