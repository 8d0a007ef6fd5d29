package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-raykernel/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Render traces every pixel of the camera's image in parallel and returns the
// finished framebuffer. Each pixel is written exactly once. If ctx is
// cancelled, no further tiles are started and the context error is returned
// with a partially rendered framebuffer.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	width, height := rt.Width(), rt.Height()
	fb := NewFramebuffer(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize)
	pool := NewWorkerPool(rt, fb, rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d: %d primitives, %d lights, %d tiles on %d workers...\n",
		width, height, len(rt.scene.Primitives), len(rt.scene.Lights), len(tiles), pool.GetNumWorkers())

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	startTime := time.Now()

	err := pool.Run(ctx, tiles, func(result TileResult) {
		stats.add(result.Stats)
	})
	stats.Duration = time.Since(startTime)
	if err != nil {
		rt.logger.Printf("Render stopped after %d/%d tiles: %v\n", stats.Tiles, len(tiles), err)
		return fb, stats, fmt.Errorf("render: %w", err)
	}

	stats.MeanLuminance, stats.StdDevLuminance = CalculateLuminanceStats(fb)
	rt.logger.Printf("Render completed in %v (%.1f%% of pixels hit geometry)\n",
		stats.Duration, 100*stats.HitRatio())

	return fb, stats, nil
}
