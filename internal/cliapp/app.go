// Package cliapp wires the rename pipeline together for the command line:
// read SDL, parse, apply the configured renames, and write the result.
package cliapp

import (
	"context"
	"fmt"
	"io"
	"os"

	"graphql-rename/internal/config"
	"graphql-rename/internal/logging"
	"graphql-rename/internal/sdl"
	"graphql-rename/internal/transform"
	"graphql-rename/internal/valid"
)

// App owns the resources of one rename invocation.
type App struct {
	cfg    *config.Config
	logger *logging.Logger
}

// New creates an App.
func New(cfg *config.Config, logger *logging.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &App{cfg: cfg, logger: logger}, nil
}

// Run executes the pipeline. Validation failures from the rename transform
// are logged one line per error and returned as a single aggregate error.
func (a *App) Run(ctx context.Context) error {
	src, err := a.readInput()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	pairs := a.cfg.Pairs()
	a.logger.Debug("loaded input",
		"input", a.cfg.Input,
		"bytes", len(src),
		"renames", len(pairs),
	)

	rewritten := valid.AndThen(sdl.Parse(src), transform.NewRenameTypes(pairs).Apply)

	cfg, err := rewritten.ToResult()
	if err != nil {
		for _, msg := range rewritten.Errors() {
			a.logger.ErrorContext(ctx, "rename failed", "error", msg)
		}
		return err
	}

	if err := a.writeOutput(sdl.Print(cfg)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Info("rewrote schema",
		"types", cfg.Types.Len(),
		"renames", len(pairs),
		"output", a.cfg.Output,
	)
	return nil
}

func (a *App) readInput() (string, error) {
	if a.cfg.Input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(a.cfg.Input)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (a *App) writeOutput(out string) error {
	if a.cfg.Output == "-" {
		_, err := io.WriteString(os.Stdout, out)
		return err
	}
	return os.WriteFile(a.cfg.Output, []byte(out), 0o644)
}
