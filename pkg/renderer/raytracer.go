package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
	"github.com/df07/go-raykernel/pkg/scene"
)

// hitTieEpsilon is the distance under which two hits count as equally near.
// The earlier primitive in scene order wins a tie.
const hitTieEpsilon = 1e-9

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize             int  // Size of each square tile in pixels
	NumWorkers           int  // Number of parallel workers (0 = use CPU count)
	Shadows              bool // Cast shadow rays toward point lights
	InverseSquareFalloff bool // Divide point light contributions by distance²
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:             32,
		NumWorkers:           0, // Auto-detect CPU count
		Shadows:              true,
		InverseSquareFalloff: false,
	}
}

// Raytracer casts one primary ray per pixel against a read-only scene.
// All tracing methods are safe for concurrent use.
type Raytracer struct {
	scene  *scene.Scene
	config RenderConfig
	logger core.Logger
}

// hitRecord is the nearest intersection found for a ray
type hitRecord struct {
	primitive geometry.Primitive
	T         float64
	Point     core.Vec3
}

// NewRaytracer validates the scene and configuration. Any error here is a
// configuration error and no pixel is traced.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	if config.TileSize <= 0 {
		return nil, core.NewConfigurationError("render.tile_size", "must be positive")
	}
	if config.NumWorkers < 0 {
		return nil, core.NewConfigurationError("render.workers", "must not be negative")
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}, nil
}

// Width returns the output width in pixels
func (rt *Raytracer) Width() int { return rt.scene.Camera.Width() }

// Height returns the output height in pixels
func (rt *Raytracer) Height() int { return rt.scene.Camera.Height() }

// TracePixel returns the color of pixel (px, py)
func (rt *Raytracer) TracePixel(px, py int) core.Color {
	c, _ := rt.traceRay(rt.scene.Camera.GetRay(px, py))
	return c
}

// TraceRay returns the color seen along an arbitrary unit-direction ray
func (rt *Raytracer) TraceRay(ray core.Ray) core.Color {
	c, _ := rt.traceRay(ray)
	return c
}

func (rt *Raytracer) traceRay(ray core.Ray) (core.Color, bool) {
	hit, isHit := rt.hitWorld(ray)
	if !isHit {
		return rt.scene.Background, false
	}
	return rt.shade(ray, hit), true
}

// hitWorld finds the nearest intersection over all primitives
func (rt *Raytracer) hitWorld(ray core.Ray) (hitRecord, bool) {
	var closest hitRecord
	hitAnything := false

	for _, primitive := range rt.scene.Primitives {
		hit, ok := geometry.Nearest(primitive, ray)
		if !ok {
			continue
		}
		if !hitAnything || hit.T < closest.T-hitTieEpsilon {
			closest = hitRecord{primitive: primitive, T: hit.T, Point: hit.Point}
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// shade evaluates direct lighting at a hit using a Lambertian model:
//
//	albedo ⊙ (Σ ambient radiance + Σ point radiance · max(0, n·l) · visibility)
//
// with n the surface normal turned toward the viewer and l the unit direction
// to the light. Point contributions are divided by d² only when
// InverseSquareFalloff is set.
func (rt *Raytracer) shade(ray core.Ray, hit hitRecord) core.Color {
	normal := hit.primitive.NormalAt(hit.Point)
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}

	irradiance := core.Vec3{}
	for _, light := range rt.scene.Lights {
		switch l := light.(type) {
		case *lights.Ambient:
			irradiance = irradiance.Add(l.Radiance())
		case *lights.Point:
			irradiance = irradiance.Add(rt.pointContribution(l, hit.Point, normal))
		}
	}

	albedo := hit.primitive.SurfaceColor().Vec()
	return core.ColorFromVec(albedo.MultiplyVec(irradiance))
}

func (rt *Raytracer) pointContribution(light *lights.Point, point, normal core.Vec3) core.Vec3 {
	sample, ok := light.Sample(point)
	if !ok {
		return core.Vec3{}
	}

	cosine := normal.Dot(sample.Direction)
	if cosine <= 0 {
		return core.Vec3{}
	}

	if rt.config.Shadows && rt.occluded(point, normal, sample) {
		return core.Vec3{}
	}

	contribution := sample.Radiance.Multiply(cosine)
	if rt.config.InverseSquareFalloff {
		contribution = contribution.Multiply(1 / (sample.Distance * sample.Distance))
	}
	if !contribution.IsFinite() {
		return core.Vec3{}
	}
	return contribution
}

// occluded reports whether any primitive lies between point and the light
func (rt *Raytracer) occluded(point, normal core.Vec3, sample lights.LightSample) bool {
	origin := point.Add(normal.Multiply(core.ShadowBias))
	shadowRay := core.Ray{Origin: origin, Direction: sample.Direction}
	maxT := sample.Distance - core.ShadowBias

	for _, primitive := range rt.scene.Primitives {
		if hit, ok := geometry.Nearest(primitive, shadowRay); ok && hit.T < maxT {
			return true
		}
	}
	return false
}

// RenderBounds traces every pixel inside bounds into the framebuffer and
// returns how many of them hit a primitive
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, fb *Framebuffer) TileStats {
	camera := rt.scene.Camera
	stats := TileStats{Pixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			c, hit := rt.traceRay(camera.GetRay(i, j))
			fb.Set(i, j, c)
			if hit {
				stats.Hits++
			}
		}
	}

	return stats
}
