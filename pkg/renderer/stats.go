package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-raykernel/pkg/core"
)

// TileStats counts the pixels of one tile
type TileStats struct {
	Pixels int // Pixels traced
	Hits   int // Pixels whose primary ray hit a primitive
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	HitPixels       int           // Pixels whose primary ray hit a primitive
	Tiles           int           // Number of tiles rendered
	Workers         int           // Number of parallel workers used
	Duration        time.Duration // Wall-clock render time
	MeanLuminance   float64       // Mean relative luminance in [0, 1]
	StdDevLuminance float64       // Sample standard deviation of luminance
}

// HitRatio returns the fraction of pixels that hit a primitive
func (rs RenderStats) HitRatio() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.HitPixels) / float64(rs.TotalPixels)
}

// add merges tile statistics into the render totals
func (rs *RenderStats) add(tile TileStats) {
	rs.TotalPixels += tile.Pixels
	rs.HitPixels += tile.Hits
	rs.Tiles++
}

// Luminance returns the Rec. 709 relative luminance of a color in [0, 1]
func Luminance(c core.Color) float64 {
	v := c.Vec()
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// CalculateLuminanceStats returns the mean and sample standard deviation of
// pixel luminance. The deviation is 0 for fewer than two pixels.
func CalculateLuminanceStats(fb *Framebuffer) (mean, stdDev float64) {
	if len(fb.Pixels) == 0 {
		return 0, 0
	}

	luminances := make([]float64, len(fb.Pixels))
	for i, c := range fb.Pixels {
		luminances[i] = Luminance(c)
	}

	if len(luminances) < 2 {
		return luminances[0], 0
	}
	return stat.MeanStdDev(luminances, nil)
}
