package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// FrameStats contains statistics about a single rendered frame
type FrameStats struct {
	Width, Height int
	NumWorkers    int
	NumBands      int
	RenderTime    time.Duration

	// Per-band wall time spread, in milliseconds. A high deviation relative
	// to the mean indicates uneven load across bands (e.g. one band full of
	// deep mirror recursion).
	BandMeanMs   float64
	BandStdDevMs float64

	// HDR luminance of the frame's sampled pixels, measured before tone
	// mapping. Tracks overall scene brightness as the animation moves the
	// light.
	LuminanceMean   float64
	LuminanceStdDev float64
}

// newFrameStats aggregates per-band durations and luminance samples into
// frame statistics
func newFrameStats(width, height, workers int, total time.Duration, bands []time.Duration, luminance []float64) FrameStats {
	ms := make([]float64, len(bands))
	for i, d := range bands {
		ms[i] = float64(d.Microseconds()) / 1000.0
	}

	fs := FrameStats{
		Width:      width,
		Height:     height,
		NumWorkers: workers,
		NumBands:   len(bands),
		RenderTime: total,
	}
	if len(ms) > 0 {
		fs.BandMeanMs = stat.Mean(ms, nil)
	}
	if len(ms) > 1 {
		fs.BandStdDevMs = stat.StdDev(ms, nil)
	}
	if len(luminance) > 0 {
		fs.LuminanceMean = stat.Mean(luminance, nil)
	}
	if len(luminance) > 1 {
		fs.LuminanceStdDev = stat.StdDev(luminance, nil)
	}
	return fs
}

// PixelsPerSecond returns the frame's overall fill rate
func (fs FrameStats) PixelsPerSecond() float64 {
	seconds := fs.RenderTime.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(fs.Width*fs.Height) / seconds
}
