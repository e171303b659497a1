package renderer

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/INDAPlus21/emilhul-task-13/pkg/core"
	"github.com/INDAPlus21/emilhul-task-13/pkg/geometry"
)

// diffuseAlbedo is the energy retained per diffuse bounce
const diffuseAlbedo = 0.5

// shadowEpsilon excludes near-zero t values on scene queries so scatter rays
// cannot re-intersect the surface they just left ("shadow acne")
const shadowEpsilon = 0.001

// Scene is what the raytracer needs from a scene: a camera, background
// colors for the miss gradient, and a closest-hit query over its primitives
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool)
}

// SamplingConfig contains per-pixel sampling configuration
type SamplingConfig struct {
	SamplesPerPixel int  // Number of jittered rays per pixel
	MaxDepth        int  // Maximum ray bounce depth
	UniformScatter  bool // Use the legacy uniform-in-sphere scatter target
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize   int // Size of each tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	Sampling   SamplingConfig
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0,
		Sampling:   DefaultSamplingConfig(),
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// silentLogger discards all output, used when no logger is provided
type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

// Raytracer renders a scene into a framebuffer
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer for the given scene and output size.
// A nil logger disables progress output.
func NewRaytracer(scene Scene, width, height int, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = silentLogger{}
	}
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultRenderConfig(),
		logger: logger,
	}
}

// SetRenderConfig updates the rendering configuration
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	rt.config = config
}

// backgroundGradient returns the miss color: a vertical blend between the
// scene's bottom and top colors based on the ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1, 1] to [0, 1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// scatterTarget picks the point a diffuse bounce aims at. The default is the
// true Lambertian target, the unit sphere surface offset by the normal; the
// legacy mode samples uniformly inside that sphere instead.
func (rt *Raytracer) scatterTarget(hit *geometry.HitRecord, sampler core.Sampler) core.Vec3 {
	if rt.config.Sampling.UniformScatter {
		return hit.Point.Add(hit.Normal).Add(core.SamplePointInUnitSphere(sampler.Get3D()))
	}
	return hit.Point.Add(hit.Normal).Add(core.SampleOnUnitSphere(sampler.Get2D()))
}

// RayColor returns the color seen along a ray, recursing through diffuse
// bounces until the depth budget is exhausted
func (rt *Raytracer) RayColor(r core.Ray, sampler core.Sampler, depth int) core.Vec3 {
	// Depth exhausted: no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.Hit(r, shadowEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	target := rt.scatterTarget(hit, sampler)
	scattered := core.NewRay(hit.Point, target.Subtract(hit.Point))

	return rt.RayColor(scattered, sampler, depth-1).Multiply(diffuseAlbedo)
}

// renderBounds renders the pixels inside bounds into the shared stats grid.
// Tiles have non-overlapping bounds, so concurrent calls are safe.
func (rt *Raytracer) renderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand) RenderStats {
	camera := rt.scene.GetCamera()
	sampler := core.NewRandomSampler(random)

	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]

			for sample := 0; sample < rt.config.Sampling.SamplesPerPixel; sample++ {
				// Jittered screen coordinates; image row 0 is the top of the
				// viewport, so v is flipped
				u := (float64(i) + random.Float64()) / float64(rt.width)
				v := (float64(rt.height-1-j) + random.Float64()) / float64(rt.height)

				ray := camera.GetRay(u, v)
				ps.AddSample(rt.RayColor(ray, sampler, rt.config.Sampling.MaxDepth))
			}

			stats.TotalSamples += ps.SampleCount
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}

// Render renders the scene across the worker pool and returns the finished
// framebuffer of averaged, linear-space pixel colors
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize)

	pixelStats := make([][]PixelStats, rt.height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, rt.width)
	}

	pool := NewWorkerPool(rt.scene, rt.width, rt.height, rt.config)
	pool.Start()

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel across %d tiles (%d workers)...\n",
		rt.width, rt.height, rt.config.Sampling.SamplesPerPixel, len(tiles), pool.NumWorkers())

	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:       tile,
			TaskID:     taskID,
			PixelStats: pixelStats,
		})
	}

	for range tiles {
		if _, ok := pool.GetResult(); !ok {
			break
		}
	}
	pool.Stop()

	return rt.assembleImage(pixelStats)
}

// assembleImage collects the shared pixel stats into a framebuffer and
// calculates render statistics in a single pass
func (rt *Raytracer) assembleImage(pixelStats [][]PixelStats) (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(rt.width, rt.height)

	stats := RenderStats{TotalPixels: rt.width * rt.height}

	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			ps := &pixelStats[y][x]
			fb.Set(x, y, ps.AverageColor())
			stats.TotalSamples += ps.SampleCount
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return fb, stats
}
