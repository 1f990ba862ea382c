package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/geometry"
	"github.com/df07/go-mc-raytracer/pkg/integrator"
	"github.com/df07/go-mc-raytracer/pkg/log"
)

var logger = log.New("renderer")

// Raytracer renders a world by splitting the sample budget across workers,
// each of which renders the full frame with its own random stream
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	config     Config
}

// NewRaytracer checks the config and the world and creates a raytracer.
// Any problem is reported here so that Render itself cannot hit a bad scene.
func NewRaytracer(world geometry.Hittable, camera *Camera, background core.Vec3, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if camera == nil {
		return nil, fmt.Errorf("nil camera: %w", ErrInvalidConfig)
	}
	if err := geometry.Validate(world); err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(background, config.MaxDepth),
		config:     config,
	}, nil
}

// SetIntegrator replaces the default recursive path tracer
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Config returns the render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render runs every worker to completion and returns the averaged,
// gamma-corrected image, row-major from the top. The context is only checked
// before work starts; a started render always runs to the end.
func (rt *Raytracer) Render(ctx context.Context) ([]core.Vec3, RenderStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	cfg := rt.config
	samplesPerWorker := SamplesPerWorker(cfg.SamplesPerPixel, cfg.NumWorkers)
	stats := RenderStats{
		Width:            cfg.Width,
		Height:           cfg.Height,
		SamplesPerPixel:  cfg.SamplesPerPixel,
		SamplesPerWorker: samplesPerWorker,
		TotalSamples:     samplesPerWorker * cfg.NumWorkers,
		Workers:          make([]WorkerStats, cfg.NumWorkers),
	}

	logger.Noticef("rendering %dx%d at %d spp using %d workers (%d samples each)",
		cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.NumWorkers, samplesPerWorker)
	if stats.TotalSamples != cfg.SamplesPerPixel {
		logger.Infof("%d spp does not split evenly, rendering %d spp", cfg.SamplesPerPixel, stats.TotalSamples)
	}

	start := time.Now()

	pool := NewWorkerPool(rt.world, rt.camera, rt.integrator, cfg.Width, cfg.Height, cfg.NumWorkers)
	pool.Start()
	for i := 0; i < cfg.NumWorkers; i++ {
		pool.SubmitTask(RenderTask{
			TaskID:  i,
			Samples: samplesPerWorker,
			Seed:    cfg.Seed + int64(i),
		})
	}
	pool.Stop()

	// Buffers are kept in task order so the average does not depend on
	// which worker finished first
	buffers := make([][]core.Vec3, cfg.NumWorkers)
	var failures []error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Err != nil {
			logger.Errorf("task %d failed: %v", result.TaskID, result.Err)
			failures = append(failures, result.Err)
			continue
		}
		buffers[result.TaskID] = result.Buffer
		stats.Workers[result.TaskID] = result.Stats
	}
	stats.RenderTime = time.Since(start)

	if len(failures) > 0 {
		return nil, stats, errors.Join(failures...)
	}

	image, err := AverageBuffers(buffers)
	if err != nil {
		return nil, stats, err
	}

	logger.Noticef("render finished in %s", stats.RenderTime)
	return image, stats, nil
}

// RenderBuffer renders the full frame with the given number of samples per
// pixel. Pixel (i, j) is sampled at u=(i+rand)/(width-1), v=(j+rand)/(height-1)
// with j counted from the bottom; the result is stored top row first. Each
// pixel holds the gamma-corrected mean of its samples, unclamped.
func RenderBuffer(world geometry.Hittable, camera *Camera, integ integrator.Integrator, width, height, samples int, sampler core.Sampler) []core.Vec3 {
	buffer := make([]core.Vec3, width*height)

	for j := height - 1; j >= 0; j-- {
		row := height - 1 - j
		for i := 0; i < width; i++ {
			sum := core.Vec3{}
			for s := 0; s < samples; s++ {
				jitter := sampler.Get2D()
				u := (float64(i) + jitter.X) / float64(width-1)
				v := (float64(j) + jitter.Y) / float64(height-1)
				ray := camera.GetRay(u, v, sampler)
				sum = sum.Add(integ.RayColor(ray, world, sampler))
			}
			buffer[row*width+i] = GammaCorrect(sum.Divide(float64(samples)))
		}
	}

	return buffer
}

// AverageBuffers returns the element-wise arithmetic mean of equally sized buffers
func AverageBuffers(buffers [][]core.Vec3) ([]core.Vec3, error) {
	if len(buffers) == 0 {
		return nil, fmt.Errorf("no buffers to average: %w", ErrBufferMismatch)
	}

	size := len(buffers[0])
	for i, buffer := range buffers {
		if len(buffer) != size {
			return nil, fmt.Errorf("buffer %d has %d pixels, expected %d: %w", i, len(buffer), size, ErrBufferMismatch)
		}
	}

	result := make([]core.Vec3, size)
	for _, buffer := range buffers {
		for p, c := range buffer {
			result[p] = result[p].Add(c)
		}
	}

	count := float64(len(buffers))
	for p := range result {
		result[p] = result[p].Divide(count)
	}

	return result, nil
}

// GammaCorrect applies gamma 2 correction
func GammaCorrect(c core.Vec3) core.Vec3 {
	return c.Sqrt()
}
