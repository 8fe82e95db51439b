// Package paradox counts the obstacle placements that trap the guard
// in a loop.
//
// Every trial is independent: a candidate cell gets an Overlay with
// one extra obstacle and a fresh walk from the original start, so
// trials run in parallel. Candidates are split into chunks that a
// bounded pool of workers drains from a shared channel; each worker
// keeps one StateSet and resets it between trials instead of
// allocating per trial.
package paradox

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dbsmedya/gopatrol/internal/grid"
	"github.com/dbsmedya/gopatrol/internal/logger"
	"github.com/dbsmedya/gopatrol/internal/patrol"
)

// DefaultChunkSize is the number of candidate cells a worker claims
// at a time.
const DefaultChunkSize = 256

// Searcher runs obstacle placement trials over a grid.
type Searcher struct {
	workers int
	chunk   int
	log     *logger.Logger
}

// NewSearcher creates a Searcher. workers <= 0 selects one worker per
// CPU, chunkSize <= 0 selects DefaultChunkSize, and a nil log
// disables search logging.
func NewSearcher(workers, chunkSize int, log *logger.Logger) *Searcher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Searcher{
		workers: workers,
		chunk:   chunkSize,
		log:     log,
	}
}

// Workers returns the effective worker count.
func (s *Searcher) Workers() int { return s.workers }

// Count reports how many of the candidate cells would trap the guard
// in a loop if a single extra obstacle were placed there. Candidates
// that cannot hold an obstacle (outside the map, on the guard start,
// or already blocked) never loop and count as zero.
//
// Count stops early and returns the context's error when ctx is
// cancelled.
func (s *Searcher) Count(ctx context.Context, g *grid.Grid, start grid.GuardState, candidates []grid.Position) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	chunks := chunkPositions(candidates, s.chunk)
	workers := s.workers
	if workers > len(chunks) {
		workers = len(chunks)
	}

	s.log.Debugw("starting paradox search",
		"candidates", len(candidates),
		"chunks", len(chunks),
		"workers", workers,
	)

	work := make(chan []grid.Position, len(chunks))
	for _, c := range chunks {
		work <- c
	}
	close(work)

	var total atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		wlog := s.log.WithWorker(i)
		eg.Go(func() error {
			states := patrol.NewStateSet(g.Width(), g.Height())
			trials := 0
			for chunk := range work {
				if err := ctx.Err(); err != nil {
					return err
				}
				found := 0
				for _, p := range chunk {
					if loops(g, start, p, states) {
						found++
					}
				}
				trials += len(chunk)
				total.Add(int64(found))
			}
			wlog.Debugw("worker drained", "trials", trials)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, fmt.Errorf("paradox search aborted: %w", err)
	}
	return int(total.Load()), nil
}

// CountExhaustive counts looping placements over every open cell
// except the guard start, including cells the unmodified walk never
// reaches. Those extra cells cannot affect the walk, so the count
// always matches Count over the walked route; CountExhaustive is the
// slow independent check.
func (s *Searcher) CountExhaustive(ctx context.Context, g *grid.Grid, start grid.GuardState) (int, error) {
	candidates := make([]grid.Position, 0, g.Open()-1)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			if p == start.Pos || g.Blocked(p) {
				continue
			}
			candidates = append(candidates, p)
		}
	}
	return s.Count(ctx, g, start, candidates)
}

// Find returns the looping placements themselves, in candidate order.
// It runs on a single goroutine; use Count for the parallel tally and
// Find when the positions are needed, as in rendered maps.
func (s *Searcher) Find(ctx context.Context, g *grid.Grid, start grid.GuardState, candidates []grid.Position) ([]grid.Position, error) {
	states := patrol.NewStateSet(g.Width(), g.Height())
	var found []grid.Position
	for i, p := range candidates {
		if i%s.chunk == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("paradox search aborted: %w", err)
			}
		}
		if loops(g, start, p, states) {
			found = append(found, p)
		}
	}
	return found, nil
}

// loops reports whether one extra obstacle at p traps the walk.
// Placements the grid rejects leave the walk unchanged and report
// false.
func loops(g *grid.Grid, start grid.GuardState, p grid.Position, states *patrol.StateSet) bool {
	if g.Blocked(p) {
		return false
	}
	overlay, err := g.WithObstacle(p)
	if err != nil {
		return false
	}
	return patrol.Walk(overlay, start, states, nil).Outcome == patrol.LoopDetected
}

// chunkPositions splits candidates into runs of at most size cells.
func chunkPositions(candidates []grid.Position, size int) [][]grid.Position {
	chunks := make([][]grid.Position, 0, (len(candidates)+size-1)/size)
	for len(candidates) > size {
		chunks = append(chunks, candidates[:size])
		candidates = candidates[size:]
	}
	return append(chunks, candidates)
}
