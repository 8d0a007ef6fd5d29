package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raykernel/pkg/core"
)

// Framebuffer is a row-major grid of pixel colors. Each cell is written by
// exactly one tile during a render, so concurrent writers never overlap.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// Set stores the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Color) {
	fb.Pixels[y*fb.Width+x] = c
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Color {
	return fb.Pixels[y*fb.Width+x]
}

// Bounds returns the framebuffer rectangle
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// Bytes returns the pixels as packed RGB triples, row-major
func (fb *Framebuffer) Bytes() []byte {
	out := make([]byte, 0, len(fb.Pixels)*3)
	for _, c := range fb.Pixels {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}

// ToImage converts the framebuffer to an opaque RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}
