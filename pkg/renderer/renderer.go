// Package renderer drives the data-parallel per-pixel render loop: one task
// per horizontal band of the framebuffer, executed across a fixed worker
// pool. The scene is shared read-only by all workers for the duration of a
// frame; all animation happens strictly between frames.
package renderer

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/glimt/go-whitted-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
	BandHeight int     // Rows per worker task
	Exposure   float64 // Tone-mapping exposure scale
	Gamma      float64 // Tone-mapping gamma
}

// DefaultConfig returns sensible default values. Exposure and gamma default
// to neutral so HDR values in [0,1] map straight to bytes.
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		BandHeight: 16,
		Exposure:   1.0,
		Gamma:      1.0,
	}
}

// Renderer renders frames of a scene into a caller-supplied BGRA buffer
type Renderer struct {
	config Config
	pool   *WorkerPool
	logger core.Logger

	// Band results carry no frame tag, so concurrent frames would collect
	// each other's results. Render serializes on this.
	mu sync.Mutex
}

// NewRenderer creates a renderer and starts its worker pool
func NewRenderer(config Config, logger core.Logger) (*Renderer, error) {
	if config.Exposure <= 0 || config.Gamma <= 0 {
		return nil, fmt.Errorf("renderer: exposure and gamma must be positive, got %v/%v", config.Exposure, config.Gamma)
	}
	if config.BandHeight <= 0 {
		config.BandHeight = DefaultConfig().BandHeight
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	pool := NewWorkerPool(config.NumWorkers)
	pool.Start()

	return &Renderer{
		config: config,
		pool:   pool,
		logger: logger,
	}, nil
}

// Close shuts down the worker pool
func (r *Renderer) Close() {
	r.pool.Stop()
}

// Render fills buf with one frame of the scene. The buffer holds 4 bytes per
// pixel in row-major order: blue, green, red, alpha (always 255). The tick
// seeds the per-band random streams so stochastic sampling varies frame to
// frame; it does not otherwise affect the image.
//
// Render is safe for concurrent use; concurrent calls serialize, one frame
// at a time. The scene must not be mutated while its Render is in flight.
func (r *Renderer) Render(scene *core.Scene, tick float64, buf []byte) (FrameStats, error) {
	width := scene.Camera.ScreenWidth
	height := scene.Camera.ScreenHeight

	if want := width * height * 4; len(buf) != want {
		return FrameStats{}, fmt.Errorf("renderer: buffer size %d, want %d for %dx%d", len(buf), want, width, height)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()

	// Partition the frame into disjoint row bands
	var tasks []bandTask
	for y0 := 0; y0 < height; y0 += r.config.BandHeight {
		y1 := y0 + r.config.BandHeight
		if y1 > height {
			y1 = height
		}
		tasks = append(tasks, bandTask{
			scene:    scene,
			buf:      buf,
			y0:       y0,
			y1:       y1,
			seed:     bandSeed(tick, y0),
			exposure: r.config.Exposure,
			gamma:    r.config.Gamma,
		})
	}

	// Submit from a separate goroutine while draining results here: a frame
	// can hold more bands than the task and result queues have capacity for,
	// and submitting them all up front would fill both queues and block.
	go func() {
		for _, task := range tasks {
			r.pool.Submit(task)
		}
	}()

	durations := make([]time.Duration, 0, len(tasks))
	var luminance []float64
	for i := 0; i < len(tasks); i++ {
		result := r.pool.Result()
		durations = append(durations, result.duration)
		luminance = append(luminance, result.luminance...)
	}

	return newFrameStats(width, height, r.pool.NumWorkers(), time.Since(start), durations, luminance), nil
}

// RenderImage renders one frame and returns it as an RGBA image, for
// presentation layers that want an image.Image instead of a raw buffer.
func (r *Renderer) RenderImage(scene *core.Scene, tick float64) (*image.RGBA, FrameStats, error) {
	width := scene.Camera.ScreenWidth
	height := scene.Camera.ScreenHeight

	buf := make([]byte, width*height*4)
	stats, err := r.Render(scene, tick, buf)
	if err != nil {
		return nil, FrameStats{}, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(buf); i += 4 {
		// Swap the buffer's BGRA to the image's RGBA
		img.Pix[i] = buf[i+2]
		img.Pix[i+1] = buf[i+1]
		img.Pix[i+2] = buf[i]
		img.Pix[i+3] = buf[i+3]
	}

	return img, stats, nil
}

// bandSeed derives a deterministic per-band random seed from the frame tick
func bandSeed(tick float64, y0 int) int64 {
	return int64(tick)*1000003 + int64(y0)*7919 + 1
}
