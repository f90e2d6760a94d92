package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

// bandTask is one horizontal band of a frame. Bands are disjoint, so workers
// write to non-overlapping slices of the output buffer with no locking.
type bandTask struct {
	scene    *core.Scene
	buf      []byte
	y0, y1   int
	seed     int64
	exposure float64
	gamma    float64
}

// bandResult reports how long a band took to render, plus the HDR luminance
// of its sampled pixels.
type bandResult struct {
	y0        int
	duration  time.Duration
	luminance []float64
}

// WorkerPool manages parallel band rendering across a fixed set of workers.
// Each worker owns a private random number stream, reseeded per task, so
// stochastic sampling is independent across bands and across frames.
type WorkerPool struct {
	taskQueue   chan bandTask
	resultQueue chan bandResult
	numWorkers  int
	wg          sync.WaitGroup
	startOnce   sync.Once
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Zero or negative means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		taskQueue:   make(chan bandTask, numWorkers*4),
		resultQueue: make(chan bandResult, numWorkers*4),
		numWorkers:  numWorkers,
	}
}

// Start launches the workers. Subsequent calls are no-ops.
func (wp *WorkerPool) Start() {
	wp.startOnce.Do(func() {
		for i := 0; i < wp.numWorkers; i++ {
			wp.wg.Add(1)
			go wp.run()
		}
	})
}

// Stop shuts down the workers and waits for them to drain
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit queues a band task
func (wp *WorkerPool) Submit(task bandTask) {
	wp.taskQueue <- task
}

// Result retrieves a completed band result
func (wp *WorkerPool) Result() bandResult {
	return <-wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		random := rand.New(rand.NewSource(task.seed))
		start := time.Now()
		luminance := renderBand(task, random)
		wp.resultQueue <- bandResult{y0: task.y0, duration: time.Since(start), luminance: luminance}
	}
}

// Pre-tone-map luminance is sampled at every Nth pixel for frame statistics
const luminanceSampleStride = 16

// renderBand shades every pixel in the band independently: primary ray from
// the camera, nearest intersection, material evaluation, tone map, write.
// Pixels whose ray escapes the scene receive the background color. Returns
// the HDR luminance of the band's sampled pixels.
func renderBand(task bandTask, random *rand.Rand) []float64 {
	scene := task.scene
	camera := scene.Camera
	width := camera.ScreenWidth

	luminance := make([]float64, 0, width*(task.y1-task.y0)/luminanceSampleStride+1)

	for y := task.y0; y < task.y1; y++ {
		for x := 0; x < width; x++ {
			ray := camera.GetRayFromUV(float64(x), float64(y))

			pixel := scene.Background
			if hit, ok := scene.Cast(ray, 0); ok {
				primitive := scene.Primitives[hit.PrimitiveIndex]
				point := ray.At(hit.T)
				normal := primitive.NormalAt(point)
				pixel = primitive.Material().ColorAt(point, normal, ray, scene, hit.Depth, random)
			}

			if (y*width+x)%luminanceSampleStride == 0 {
				luminance = append(luminance, pixel.Luminance())
			}

			r, g, b := pixel.ToneMap(task.exposure, task.gamma)

			// Output is BGRA, row-major, 4 bytes per pixel
			offset := (y*width + x) * 4
			task.buf[offset] = b
			task.buf[offset+1] = g
			task.buf[offset+2] = r
			task.buf[offset+3] = 255
		}
	}

	return luminance
}
