package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvgen/builder"
	"github.com/katalvlaran/lvgen/export"
	"github.com/katalvlaran/lvgen/internal/config"
	"github.com/katalvlaran/lvgen/stream"
)

// sample is one generated graph, serialized and optionally summarized.
type sample struct {
	index   int
	seed    *int64
	summary *export.Summary
	data    []byte
}

// generate builds every sample of req, at most req.Output.Parallel at a time,
// then writes them in index order.
func (c *CLI) generate(ctx context.Context, req *config.Request) error {
	logger := loggerFromContext(ctx)

	format, err := export.ParseFormat(req.Output.Format)
	if err != nil {
		return err
	}
	cons, err := req.Constructor()
	if err != nil {
		return err
	}

	seeds := sampleSeeds(logger, req)
	samples := make([]*sample, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(req.Output.Parallel)
	for i := range samples {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := buildSample(gctx, logger, req, cons, format, i, seeds[i])
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
			samples[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, s := range samples {
		if err := c.emit(logger, req, s); err != nil {
			return err
		}
	}
	return nil
}

// sampleSeeds returns one seed per sample. A single sample uses the request seed
// as is (nil means clock-derived); batches derive sample i from a base seed.
func sampleSeeds(logger *log.Logger, req *config.Request) []*int64 {
	n := req.Output.Samples
	if n == 1 {
		return []*int64{req.Model.Seed}
	}

	var base int64
	if req.Model.Seed != nil {
		base = *req.Model.Seed
	} else {
		base = stream.NewUnseeded().Seed()
		logger.Debug("batch seed derived from clock", "seed", base)
	}

	seeds := make([]*int64, n)
	for i := range seeds {
		seed := stream.Derive(base, uint64(i))
		seeds[i] = &seed
	}
	return seeds
}

// buildSample generates, post-processes and serializes one graph.
func buildSample(ctx context.Context, logger *log.Logger, req *config.Request, cons builder.Constructor,
	format export.Format, index int, seed *int64) (*sample, error) {
	p := newProgress(logger, req.Model.Name, index, seed)

	bopts, err := req.BuilderOptions(seed)
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildGraph(req.GraphOptions(), bopts, cons)
	if err != nil {
		return nil, err
	}
	if req.Output.LargestComponent {
		if g, err = export.LargestComponent(g); err != nil {
			return nil, err
		}
	}

	s := &sample{index: index, seed: seed}
	if req.Output.Summary {
		if s.summary, err = export.Summarize(ctx, g); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err = export.Write(&buf, g, format, graphName(req.Model.Name, index)); err != nil {
		return nil, err
	}
	s.data = buf.Bytes()

	p.done(g.VertexCount(), g.EdgeCount())
	return s, nil
}

// emit logs the sample's summary and writes its data to stdout or its file.
func (c *CLI) emit(logger *log.Logger, req *config.Request, s *sample) error {
	if s.summary != nil {
		sum := s.summary
		logger.Info("summary",
			"sample", s.index,
			"vertices", sum.Vertices,
			"edges", sum.Edges,
			"components", sum.Components,
			"largest", sum.LargestComponent,
			"mean_degree", fmt.Sprintf("%.3f", sum.MeanDegree),
			"diameter", sum.Diameter,
			"mean_distance", fmt.Sprintf("%.3f", sum.MeanDistance),
		)
		if sum.Directed {
			logger.Info("directed degrees",
				"sample", s.index,
				"max_in", sum.MaxInDegree,
				"max_out", sum.MaxOutDegree,
			)
		}
	}

	path := req.Output.Path
	if path == "" || path == "-" {
		_, err := io.Copy(c.Out, bytes.NewReader(s.data))
		return err
	}
	if req.Output.Samples > 1 {
		path = samplePath(path, s.index)
	}
	if err := os.WriteFile(path, s.data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debug("wrote graph", "path", path, "bytes", len(s.data))
	return nil
}

// samplePath inserts the sample index before the extension: "ba.dot" -> "ba-3.dot".
func samplePath(path string, index int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), index, ext)
}

// graphName turns a model name into a DOT identifier: "newman-watts", 2 -> "newman_watts_2".
func graphName(model string, index int) string {
	return fmt.Sprintf("%s_%d", strings.ReplaceAll(model, "-", "_"), index)
}
