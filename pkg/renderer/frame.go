package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// Frame is a rendered image in row-major order, top row first
type Frame struct {
	Width  int
	Height int
	Pixels []RGB
	Stats  RenderStats
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// At returns the pixel at column x of row y (0 = top)
func (f *Frame) At(x, y int) RGB {
	return f.Pixels[y*f.Width+x]
}

// Row returns the pixels of row y
func (f *Frame) Row(y int) []RGB {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}

// Image converts the frame to an *image.RGBA
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, f.At(x, y).RGBA())
		}
	}
	return img
}

// FrameOptions controls how RenderFrame schedules rows
type FrameOptions struct {
	Workers int   // Concurrent rows; 1 renders in order, 0 uses runtime.NumCPU()
	Seed    int64 // Row y draws from a source seeded with Seed+y

	// NewSampler overrides the per-row sampler; nil uses seeded random samplers
	NewSampler func(row int) core.Sampler

	// OnRow is called after each row with the number of rows finished so far.
	// Calls are serialized but may come from any worker goroutine.
	OnRow func(done int)
}

// RenderFrame renders every row of the image. Each row has its own sampler,
// so the result is identical for any worker count.
func RenderFrame(ctx context.Context, rt *Raytracer, opts FrameOptions) (*Frame, error) {
	start := time.Now()
	cfg := rt.Config()
	frame := NewFrame(cfg.Width, cfg.Height)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	newSampler := opts.NewSampler
	if newSampler == nil {
		newSampler = func(row int) core.Sampler {
			return core.NewSeededSampler(opts.Seed + int64(row))
		}
	}

	var mu sync.Mutex
	done := 0
	finishRow := func(y int, row []RGB) {
		// Rows never overlap, so the copy needs no lock
		copy(frame.Row(y), row)

		mu.Lock()
		defer mu.Unlock()
		done++
		if opts.OnRow != nil {
			opts.OnRow(done)
		}
	}

	if workers == 1 {
		for y := 0; y < cfg.Height; y++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			finishRow(y, rt.RenderRow(y, newSampler(y)))
		}
		frame.Stats = newRenderStats(cfg, workers, time.Since(start))
		return frame, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < cfg.Height; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			finishRow(y, rt.RenderRow(y, newSampler(y)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Scheduling may have stopped early without any worker seeing the cancellation
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	frame.Stats = newRenderStats(cfg, workers, time.Since(start))
	return frame, nil
}
