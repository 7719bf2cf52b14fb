package renderer

import (
	"runtime"
	"sync"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
)

// ShadeTask asks a worker to advance a contiguous range of path segments by
// one bounce. Ranges never overlap, so workers mutate their segments without
// synchronization.
type ShadeTask struct {
	Segments  []core.PathSegment
	Iteration int
	Depth     int
}

// ShadeResult reports what one task did
type ShadeResult struct {
	Rays      int
	Misses    int
	LightHits int
	Exhausted int
}

// WorkerPool manages the parallel shading lanes
type WorkerPool struct {
	taskQueue   chan ShadeTask
	resultQueue chan ShadeResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker shades segment ranges handed to it through the task queue
type Worker struct {
	ID          int
	integrator  *Integrator
	taskQueue   chan ShadeTask
	resultQueue chan ShadeResult
}

// NewWorkerPool creates a pool with the given number of workers.
// numWorkers <= 0 means one worker per CPU.
func NewWorkerPool(integrator *Integrator, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer both queues for the largest possible wave so that submitting a
	// full wave before collecting any results cannot deadlock
	maxTasks := (integrator.config.Width*integrator.config.Height + shadeChunkSize - 1) / shadeChunkSize
	if maxTasks < numWorkers {
		maxTasks = numWorkers
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ShadeTask, maxTasks),
		resultQueue: make(chan ShadeResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			integrator:  integrator,
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

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit hands a shade task to the pool
func (wp *WorkerPool) Submit(task ShadeTask) {
	wp.taskQueue <- task
}

// GetResult retrieves one completed task result
func (wp *WorkerPool) GetResult() ShadeResult {
	return <-wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		var result ShadeResult
		for i := range task.Segments {
			switch w.integrator.shadeSegment(&task.Segments[i], task.Iteration, task.Depth) {
			case outcomeMiss:
				result.Misses++
			case outcomeLightHit:
				result.LightHits++
			case outcomeExhausted:
				result.Exhausted++
			}
			result.Rays++
		}
		w.resultQueue <- result
	}
}
