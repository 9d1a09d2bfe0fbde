package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/graphio"
	"github.com/katalvlaran/sssp/internal/config"
	"github.com/katalvlaran/sssp/internal/ctxlog"
)

// Generate builds the fixture graph gc describes and writes it in the
// edge-list format, to gc.Out or to outW when gc.Out is "" or "-".
func Generate(ctx context.Context, outW, logW io.Writer, gc *config.GenConfig) error {
	ctx = ctxlog.WithLogger(ctx, newLogger(gc.LogLevel, gc.LogFormat, logW))
	log := ctxlog.FromContext(ctx)

	g, err := buildFixture(gc)
	if err != nil {
		return fmt.Errorf("failed to build %s graph: %w", gc.Kind, err)
	}
	log.Info("Fixture built.", "kind", gc.Kind, "vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", gc.Seed)

	if gc.Out == "" || gc.Out == "-" {
		return graphio.Write(outW, g)
	}

	f, err := os.Create(gc.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", gc.Out, err)
	}
	if err := graphio.Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", gc.Out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", gc.Out, err)
	}
	log.Debug("Fixture written.", "path", gc.Out)

	return nil
}

func buildFixture(gc *config.GenConfig) (*core.Graph, error) {
	bopts := []builder.BuilderOption{
		builder.WithSeed(gc.Seed),
		builder.WithWeightFn(builder.UniformWeightFn(gc.MinWeight, gc.MaxWeight)),
	}
	if gc.Both {
		bopts = append(bopts, builder.WithBidirectional())
	}

	switch gc.Kind {
	case config.KindGrid:
		return builder.BuildGraph(gc.N*gc.N, bopts, builder.Grid(gc.N, gc.N))
	case config.KindPath:
		return builder.BuildGraph(gc.N, bopts, builder.Path(gc.N))
	case config.KindStar:
		return builder.BuildGraph(gc.N, bopts, builder.Star(gc.N))
	case config.KindCycle:
		return builder.BuildGraph(gc.N, bopts, builder.Cycle(gc.N))
	case config.KindComplete:
		return builder.BuildGraph(gc.N, bopts, builder.Complete(gc.N))
	default:
		return builder.BuildGraph(gc.N, bopts, builder.RandomSparse(gc.P))
	}
}
