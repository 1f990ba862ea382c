package renderer

import "time"

// WorkerStats describes one worker's share of a render
type WorkerStats struct {
	TaskID      int           // Index of the sample batch, also the seed offset
	WorkerID    int           // Worker goroutine that rendered the batch
	Samples     int           // Samples per pixel in this batch
	Seed        int64         // Seed of the batch's random stream
	PrimaryRays int64         // Camera rays traced
	RenderTime  time.Duration // Wall time spent rendering the batch
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width            int
	Height           int
	SamplesPerPixel  int // Requested samples per pixel
	SamplesPerWorker int
	TotalSamples     int // Effective samples per pixel across all workers
	Workers          []WorkerStats
	RenderTime       time.Duration
}

// PrimaryRays returns the number of camera rays traced by all workers
func (s RenderStats) PrimaryRays() int64 {
	var total int64
	for _, w := range s.Workers {
		total += w.PrimaryRays
	}
	return total
}

// RaysPerSecond returns the primary ray throughput of the whole render
func (s RenderStats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.PrimaryRays()) / s.RenderTime.Seconds()
}
