package app

import (
	"context"
	"time"

	"lifebuf/internal/core"
	"lifebuf/internal/render"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Sink receives one packed 0x00RRGGBB frame per iteration. pixels is only
// valid for the duration of the call.
type Sink interface {
	Present(pixels []uint32, w, h int) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(pixels []uint32, w, h int) error

// Present calls f.
func (f SinkFunc) Present(pixels []uint32, w, h int) error { return f(pixels, w, h) }

// RunOptions controls Runner.Run.
type RunOptions struct {
	// Interval is the pause between frames. Zero runs unpaced.
	Interval time.Duration
	// Frames limits the number of presented frames. Zero runs until the
	// context is done.
	Frames int
}

// Runner owns a simulation and the framebuffer it is drawn into.
type Runner struct {
	sim     core.Sim
	fb      *render.Framebuffer
	palette render.Palette
	packed  []uint32
	logger  *log.Logger

	// shown is set once the current generation has been packed for a sink.
	shown bool
}

// NewRunner allocates a framebuffer matching the simulation size.
func NewRunner(sim core.Sim, palette render.Palette, logger *log.Logger) (*Runner, error) {
	size := sim.Size()
	fb, err := render.NewFramebuffer(size.W, size.H)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{sim: sim, fb: fb, palette: palette, logger: logger}, nil
}

// Sim returns the simulation driven by the runner.
func (r *Runner) Sim() core.Sim { return r.sim }

// Framebuffer returns the buffer the current generation is drawn into.
func (r *Runner) Framebuffer() *render.Framebuffer { return r.fb }

// Render draws the current generation into the framebuffer.
func (r *Runner) Render() *render.Framebuffer {
	r.palette.Project(r.fb, r.sim.Size(), r.sim.Cells())
	return r.fb
}

// Frame renders the current generation and returns it packed. The slice is
// reused by the next call.
func (r *Runner) Frame() []uint32 {
	r.Render()
	r.packed = r.fb.Packed(r.packed)
	r.shown = true
	return r.packed
}

// Presented reports whether the current generation has been handed out by
// Frame. Callers that drive their own loop check it before Advance so that
// every generation, including the seeded one, reaches the screen.
func (r *Runner) Presented() bool { return r.shown }

// Advance computes the next generation.
func (r *Runner) Advance() {
	r.sim.Step()
	r.shown = false
}

// Reset re-seeds the simulation.
func (r *Runner) Reset() error {
	if err := r.sim.Reset(); err != nil {
		return err
	}
	r.shown = false
	r.logger.Info("seeded", "sim", r.sim.Name(), "generation", r.sim.Generation())
	return nil
}

// Run presents frames to sink until opts.Frames have been shown or ctx is
// done. Each iteration renders, presents, steps and then waits. Cancellation
// is only observed between frames and is not an error.
func (r *Runner) Run(ctx context.Context, sink Sink, opts RunOptions) error {
	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	w, h := r.fb.Width(), r.fb.Height()
	for n := 0; opts.Frames <= 0 || n < opts.Frames; n++ {
		if ctx.Err() != nil {
			return nil
		}
		if err := sink.Present(r.Frame(), w, h); err != nil {
			return errors.Wrapf(err, "present generation %d", r.sim.Generation())
		}
		r.Advance()
		if gen := r.sim.Generation(); gen%100 == 0 {
			r.logger.Debug("progress", "generation", gen)
		}

		if opts.Frames > 0 && n == opts.Frames-1 {
			break
		}
		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}
	return nil
}
