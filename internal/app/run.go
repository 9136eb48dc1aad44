package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/axisdefaults/internal/bridge"
	"github.com/vk/axisdefaults/internal/config"
	"github.com/vk/axisdefaults/internal/encode"
	"github.com/vk/axisdefaults/internal/layout"
)

// Resolve loads the configured layouts, resolves every axis and writes the
// result in the configured format.
func (a *App) Resolve(ctx context.Context) (*layout.Result, error) {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Resolve method started.")

	if len(a.config.InputPaths) == 0 {
		return nil, errors.New("no layout files given")
	}
	model, err := a.loadLayout(ctx)
	if err != nil {
		return nil, err
	}

	res := layout.Resolve(ctx, model, layout.Options{Editable: a.config.Editable, Warner: a.warner})
	a.logger.Info("Layout resolved.", "axes", len(res.Document.Axes), "traces", len(res.Document.Data), "warnings", len(res.Warnings))

	if err := a.writeOutput(res.Document); err != nil {
		return nil, err
	}
	a.logger.Debug("App.Resolve method finished.")
	return res, nil
}

// RunBridge answers relayout requests from the configured plot server until
// ctx is cancelled. The health check server runs alongside when enabled.
func (a *App) RunBridge(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.RunBridge method started.")

	if a.config.BridgeURL == "" {
		return errors.New("no bridge URL given")
	}
	if a.config.HealthcheckPort > 0 {
		stop := a.startHealthcheckServer(ctx, a.config.HealthcheckPort)
		defer stop()
	}

	err := bridge.Run(ctx, bridge.Config{
		URL:                a.config.BridgeURL,
		Namespace:          a.config.BridgeNamespace,
		ConnectTimeout:     a.config.BridgeTimeout,
		InsecureSkipVerify: a.config.InsecureSkipVerify,
		Layout:             layout.Options{Editable: a.config.Editable, Warner: a.warner},
	})
	if err != nil {
		return fmt.Errorf("bridge failed: %w", err)
	}
	a.logger.Debug("App.RunBridge method finished.")
	return nil
}

func (a *App) loadLayout(ctx context.Context) (*config.Model, error) {
	a.logger.Debug("Loading layouts...", "paths", a.config.InputPaths)
	model, err := a.loader.Load(ctx, a.config.InputPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout: %w", err)
	}
	if len(model.Axes) == 0 {
		a.logger.Warn("No axes found in layout.", "paths", a.config.InputPaths)
	}
	return model, nil
}

func (a *App) writeOutput(doc encode.Document) (err error) {
	var w io.Writer = a.outW
	if a.config.OutputPath != "" {
		f, ferr := os.Create(a.config.OutputPath)
		if ferr != nil {
			return fmt.Errorf("failed to create output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		w = f
	}
	if err := encode.Encode(w, a.config.OutputFormat, doc); err != nil {
		return err
	}
	a.logger.Debug("Output written.", "format", a.config.OutputFormat, "path", a.config.OutputPath)
	return nil
}
