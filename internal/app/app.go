package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/vk/priorgrid/internal/ctxlog"
	"github.com/vk/priorgrid/internal/hclmodel"
	"github.com/vk/priorgrid/internal/param"
)

// App wires the model loader and the sampling driver behind the CLI.
type App struct {
	out    io.Writer
	logger *slog.Logger
	loader *hclmodel.Loader
}

// NewApp builds an App writing draws to outW and logs to errW.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	return &App{
		out:    outW,
		logger: newLogger(cfg, errW),
		loader: hclmodel.NewLoader(),
	}
}

// Run loads the model, reports its free-parameter list, and writes the
// requested number of joint draws as JSON lines.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	roots, err := a.loader.LoadFile(ctx, cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}

	var flat []*param.Parameter
	for _, p := range roots {
		flat = append(flat, p.Params()...)
	}
	free := param.Unique(flat)
	names := make([]string, len(free))
	for i, p := range free {
		names[i] = p.Name()
	}
	a.logger.Info("Model loaded.", "parameters", len(free), "names", names)

	rng := rand.New(rand.NewSource(cfg.Seed))
	enc := json.NewEncoder(a.out)
	for i := 0; i < cfg.Draws; i++ {
		values, err := param.Sample(rng, roots...)
		if err != nil {
			return fmt.Errorf("draw %d: %w", i, err)
		}
		if err := enc.Encode(values); err != nil {
			return fmt.Errorf("encoding draw %d: %w", i, err)
		}
	}

	a.logger.Info("Sampling complete.", "draws", cfg.Draws)
	return nil
}
