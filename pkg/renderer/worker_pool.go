package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Tile   *Tile
	Stats  TileStats
}

// WorkerPool renders tiles in parallel into a shared framebuffer.
// Tiles never overlap, so workers write disjoint cells without locking.
type WorkerPool struct {
	raytracer   *Raytracer
	framebuffer *Framebuffer
	numWorkers  int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, framebuffer *Framebuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		raytracer:   raytracer,
		framebuffer: framebuffer,
		numWorkers:  numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile and calls onTile for each completed tile from the
// calling goroutine. Cancelling ctx stops dispatching new tiles; tiles
// already in progress finish, and Run returns the context error.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, onTile func(TileResult)) error {
	g, gctx := errgroup.WithContext(ctx)
	taskQueue := make(chan TileTask)
	resultQueue := make(chan TileResult, len(tiles)) // Buffer for all results

	// Dispatcher
	g.Go(func() error {
		defer close(taskQueue)
		for i, tile := range tiles {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case taskQueue <- TileTask{Tile: tile, TaskID: i}:
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			return wp.work(gctx, taskQueue, resultQueue)
		})
	}

	var runErr error
	done := make(chan struct{})
	go func() {
		runErr = g.Wait()
		close(resultQueue)
		close(done)
	}()

	// Dispatch tile callbacks single-threaded
	for result := range resultQueue {
		if onTile != nil {
			onTile(result)
		}
	}
	<-done

	return runErr
}

// work is the main worker loop
func (wp *WorkerPool) work(ctx context.Context, taskQueue <-chan TileTask, resultQueue chan<- TileResult) error {
	for task := range taskQueue {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats := wp.raytracer.RenderBounds(task.Tile.Bounds, wp.framebuffer)
		resultQueue <- TileResult{TaskID: task.TaskID, Tile: task.Tile, Stats: stats}
	}
	return nil
}
