package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/geometry"
	"github.com/df07/go-mc-raytracer/pkg/integrator"
)

// RenderTask is one sample batch: the full frame at a share of the sample budget
type RenderTask struct {
	TaskID  int   // For deterministic ordering
	Samples int   // Samples per pixel for this batch
	Seed    int64 // Seed of the batch's private random stream
}

// RenderResult contains the result from rendering a batch
type RenderResult struct {
	TaskID int
	Buffer []core.Vec3
	Stats  WorkerStats
	Err    error
}

// WorkerPool manages parallel sample batches. The world, camera and
// integrator are shared read-only by all workers.
type WorkerPool struct {
	taskQueue   chan RenderTask
	resultQueue chan RenderResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual render tasks
type Worker struct {
	ID          int
	world       geometry.Hittable
	camera      *Camera
	integrator  integrator.Integrator
	width       int
	height      int
	taskQueue   chan RenderTask
	resultQueue chan RenderResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(world geometry.Hittable, camera *Camera, integ integrator.Integrator, width, height, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RenderTask, numWorkers),
		resultQueue: make(chan RenderResult, numWorkers),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			world:       world,
			camera:      camera,
			integrator:  integ,
			width:       width,
			height:      height,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for all submitted tasks to finish. Results stay readable
// through GetResult until drained.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a task to the worker pool. Submitting more tasks than
// workers blocks until results are read.
func (wp *WorkerPool) SubmitTask(task RenderTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed result
func (wp *WorkerPool) GetResult() (RenderResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.render(task)
	}
}

// render runs one task, turning a panic into a failed result
func (w *Worker) render(task RenderTask) (result RenderResult) {
	result.TaskID = task.TaskID

	defer func() {
		if r := recover(); r != nil {
			result.Buffer = nil
			if err, ok := r.(error); ok {
				result.Err = fmt.Errorf("task %d on worker %d: %w: %w", task.TaskID, w.ID, ErrWorkerFailed, err)
			} else {
				result.Err = fmt.Errorf("task %d on worker %d: %w: %v", task.TaskID, w.ID, ErrWorkerFailed, r)
			}
		}
	}()

	logger.Infof("worker %d: starting task %d (%d samples, seed %d)", w.ID, task.TaskID, task.Samples, task.Seed)
	start := time.Now()

	sampler := core.NewSeededSampler(task.Seed)
	result.Buffer = RenderBuffer(w.world, w.camera, w.integrator, w.width, w.height, task.Samples, sampler)

	result.Stats = WorkerStats{
		TaskID:      task.TaskID,
		WorkerID:    w.ID,
		Samples:     task.Samples,
		Seed:        task.Seed,
		PrimaryRays: int64(w.width) * int64(w.height) * int64(task.Samples),
		RenderTime:  time.Since(start),
	}
	logger.Debugf("worker %d: finished task %d in %s", w.ID, task.TaskID, result.Stats.RenderTime)

	return result
}
