// Package paint runs the interactive paint UI.
package paint

import (
	"context"
	"log/slog"

	"tableflip.dev/heatgrid/pkg/app"
	"tableflip.dev/heatgrid/pkg/config"
	"tableflip.dev/heatgrid/pkg/runner/export"
	"tableflip.dev/heatgrid/pkg/tui/board"
)

// Paint opens the paint UI on a grid generated from Config.
type Paint struct {
	Config *config.Config
	// Reload re-reads the configuration; when set and a config file was
	// found, edits to that file are applied while the UI runs.
	Reload func() (*config.Config, error)
	Logger *slog.Logger
}

// Do blocks until the user quits.
func (p *Paint) Do(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return board.Run(p.Options(ctx))
}

// Options builds the board wiring. The config watch, if any, stops when ctx
// is done.
func (p *Paint) Options(ctx context.Context) board.Options {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := p.Config
	svc := cfg.NewService(logger)

	opts := board.Options{
		Service: svc,
		Inputs:  cfg.Inputs(),
		Logger:  logger,
		Export: func(snap *app.Snapshot, dark bool) (string, error) {
			err := export.Save(snap, export.Settings{
				Geometry:  cfg.Geometry,
				WeekStart: cfg.WeekStart,
				Dark:      dark,
				Logger:    logger,
			}, cfg.ExportPath)
			return cfg.ExportPath, err
		},
	}

	if p.Reload != nil && cfg.File != "" {
		changes, err := config.Watch(ctx, cfg.File, config.DefaultWatchDelay)
		if err != nil {
			logger.Warn("config changes will not be applied", "file", cfg.File, "err", err)
		} else {
			opts.Changes = changes
			opts.Reload = func() (app.Inputs, error) {
				next, err := p.Reload()
				if err != nil {
					return app.Inputs{}, err
				}
				return next.Inputs(), nil
			}
		}
	}

	return opts
}
