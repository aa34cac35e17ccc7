// Package spinner renders a one-character progress indicator on a terminal
// while a blocking call is in flight.
package spinner

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const defaultInterval = 250 * time.Millisecond

var defaultFrames = []string{`\`, "|", "/", "-"}

// Spinner writes successive frames to w, each prefixed by a carriage return
// so it overwrites itself in place.
type Spinner struct {
	w        io.Writer
	frames   []string
	interval time.Duration
	enabled  bool
}

// Option configures the Spinner.
type Option func(*Spinner)

// WithInterval overrides the frame interval.
func WithInterval(d time.Duration) Option {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithFrames overrides the frame sequence.
func WithFrames(frames ...string) Option {
	return func(s *Spinner) {
		if len(frames) > 0 {
			s.frames = frames
		}
	}
}

// WithEnabled forces the spinner on or off regardless of the writer.
func WithEnabled(enabled bool) Option {
	return func(s *Spinner) {
		s.enabled = enabled
	}
}

// New creates a Spinner writing to w. It is enabled by default only when w
// is a terminal, so redirected output stays clean.
func New(w io.Writer, opts ...Option) *Spinner {
	s := &Spinner{
		w:        w,
		frames:   defaultFrames,
		interval: defaultInterval,
		enabled:  IsTerminal(w),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run calls fn while animating. The animation is stopped and the line
// cleared before Run returns, whether fn succeeds, fails or panics.
func (s *Spinner) Run(ctx context.Context, fn func(context.Context) error) error {
	if !s.enabled {
		return fn(ctx)
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.animate(stop)
	}()

	defer func() {
		close(stop)
		wg.Wait()
		_, _ = io.WriteString(s.w, "\r")
	}()

	return fn(ctx)
}

func (s *Spinner) animate(stop <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			_, _ = io.WriteString(s.w, "\r"+s.frames[i])
			i = (i + 1) % len(s.frames)
		}
	}
}
