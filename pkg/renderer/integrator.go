package renderer

import (
	"image"
	"time"

	"github.com/jfl07/go-wavefront-pathtracer/log"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/scene"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/shading"
)

var logger = log.New("renderer")

const (
	// Offset for secondary rays so they do not immediately re-intersect the
	// surface they start on
	rayEpsilon = 1e-3
	maxRayDist = 1e4

	// Segments shaded per worker task
	shadeChunkSize = 4096
)

// Config controls one render
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	NumWorkers      int // 0 means one per CPU
}

// Integrator advances pools of path segments through the scene in waves:
// intersect every active segment, shade the hits, retire finished paths and
// compact the survivors, once per bounce depth.
type Integrator struct {
	scene  *scene.Scene
	camera *Camera
	config Config
}

// shadeOutcome classifies what happened to one segment during a shade pass
type shadeOutcome int

const (
	outcomeMiss shadeOutcome = iota
	outcomeLightHit
	outcomeBounced
	outcomeExhausted
)

// NewIntegrator creates an integrator for a finalized scene
func NewIntegrator(sc *scene.Scene, config Config) *Integrator {
	if config.MaxDepth <= 0 {
		config.MaxDepth = 8
	}
	if config.SamplesPerPixel <= 0 {
		config.SamplesPerPixel = 1
	}
	aspect := float64(config.Width) / float64(config.Height)
	return &Integrator{
		scene:  sc,
		camera: NewCamera(sc.Camera, aspect),
		config: config,
	}
}

// Render traces the configured number of iterations and returns the final
// image along with render statistics
func (r *Integrator) Render() (*image.RGBA, RenderStats) {
	start := time.Now()
	width, height := r.config.Width, r.config.Height
	accum := make([]core.Vec3, width*height)

	stats := RenderStats{
		Iterations: r.config.SamplesPerPixel,
		MaxDepth:   r.config.MaxDepth,
	}

	pool := NewWorkerPool(r, r.config.NumWorkers)
	pool.Start()

	logger.Infof("rendering %dx%d, %d iterations, depth %d, %d workers",
		width, height, stats.Iterations, stats.MaxDepth, pool.NumWorkers())

	segments := make([]core.PathSegment, 0, width*height)
	for iteration := 0; iteration < r.config.SamplesPerPixel; iteration++ {
		segments = r.spawnSegments(segments[:0], iteration)
		stats.PrimaryRays += int64(len(segments))

		active := segments
		for depth := 1; len(active) > 0 && depth <= r.config.MaxDepth; depth++ {
			result := r.shadeWave(pool, active, iteration, depth)
			stats.RaysTraced += int64(result.Rays)
			stats.Misses += int64(result.Misses)
			stats.LightHits += int64(result.LightHits)
			stats.BudgetExhausted += int64(result.Exhausted)

			// Retire finished paths into the accumulation buffer, then
			// stream-compact the active set
			for i := range active {
				if !active[i].Alive() {
					accum[active[i].PixelIndex] = accum[active[i].PixelIndex].
						Add(active[i].Throughput.MultiplyVec(active[i].Color))
				}
			}
			active = core.CompactSegments(active, func(s *core.PathSegment) bool {
				return s.Alive()
			})
		}

		logger.Debugf("iteration %d done", iteration)
	}

	pool.Stop()

	stats.RenderTime = time.Since(start)
	return renderImage(accum, width, height, r.config.SamplesPerPixel), stats
}

// spawnSegments creates one path segment per pixel with a jittered camera ray
func (r *Integrator) spawnSegments(segments []core.PathSegment, iteration int) []core.PathSegment {
	width, height := r.config.Width, r.config.Height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixelIndex := y*width + x
			// Depth 0 is reserved for the camera jitter stream; bounce
			// depths start at 1
			sampler := core.NewPathSampler(pixelIndex, iteration, 0)
			jitter := sampler.Get2D()

			s := (float64(x) + jitter.X) / float64(width-1)
			t := (float64(y) + jitter.Y) / float64(height-1)
			ray := r.camera.GetRay(s, t)

			segments = append(segments, core.NewPathSegment(ray, pixelIndex, r.config.MaxDepth))
		}
	}
	return segments
}

// shadeWave shades all active segments for one bounce depth in parallel
func (r *Integrator) shadeWave(pool *WorkerPool, active []core.PathSegment, iteration, depth int) ShadeResult {
	tasks := 0
	for start := 0; start < len(active); start += shadeChunkSize {
		end := min(start+shadeChunkSize, len(active))
		pool.Submit(ShadeTask{
			Segments:  active[start:end],
			Iteration: iteration,
			Depth:     depth,
		})
		tasks++
	}

	var total ShadeResult
	for i := 0; i < tasks; i++ {
		result := pool.GetResult()
		total.Rays += result.Rays
		total.Misses += result.Misses
		total.LightHits += result.LightHits
		total.Exhausted += result.Exhausted
	}
	return total
}

// shadeSegment advances one path segment by one bounce. Each segment is
// owned by exactly one worker per wave, so no locking is needed.
func (r *Integrator) shadeSegment(seg *core.PathSegment, iteration, depth int) shadeOutcome {
	isect, ok := r.scene.Hit(seg.Ray, rayEpsilon, maxRayDist)
	if !ok {
		// Left the scene: no contribution, retire the path
		seg.Color = core.NewVec3(0, 0, 0)
		seg.RemainingBounces = 0
		return outcomeMiss
	}

	mat := r.scene.Material(isect.MaterialID)
	if mat.IsEmissive() {
		// Hit a light: gather its radiance and retire the path
		seg.Color = mat.Emitted()
		seg.RemainingBounces = 0
		return outcomeLightHit
	}

	sampler := core.NewPathSampler(seg.PixelIndex, iteration, depth)

	// With no lights in the scene the scatter core still runs; a zero light
	// direction degrades the diffuse estimate to its ambient term only
	lightDir, _ := shading.SampleLightDirection(r.scene.Lights(), isect.Point, sampler.Get1D())

	shading.Scatter(seg, *isect, mat, lightDir, sampler)
	if !seg.Alive() {
		return outcomeExhausted
	}
	return outcomeBounced
}
