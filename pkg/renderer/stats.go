package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	Workers      int           // Rows rendered concurrently
	Elapsed      time.Duration // Wall-clock render time
}

// newRenderStats fills in the counters for a finished frame
func newRenderStats(cfg SamplingConfig, workers int, elapsed time.Duration) RenderStats {
	pixels := cfg.Width * cfg.Height
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * cfg.SamplesPerPixel,
		Workers:      workers,
		Elapsed:      elapsed,
	}
}

// SamplesPerSecond returns camera-ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
