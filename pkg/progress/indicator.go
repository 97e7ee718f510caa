// Package progress renders a cancellable "still working" cue while a
// blocking network call is in flight.
package progress

import (
	"context"
	"fmt"
	"io"
	"time"
)

// TickInterval is the delay between loading dots.
const TickInterval = 500 * time.Millisecond

// Indicator prints loading dots to a writer from its own goroutine until
// cancelled. A disabled indicator does nothing at all: no goroutine is
// spawned and no bytes are written, so piped output streams stay clean.
//
// Cancellation is checked after every tick, bounding the stop latency at
// one TickInterval. Stop joins the goroutine, so no output can interleave
// with whatever the owner prints next.
type Indicator struct {
	out     io.Writer
	enabled bool

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an Indicator writing to out. Pass enabled=false in
// non-interactive mode.
func New(out io.Writer, enabled bool) *Indicator {
	return &Indicator{out: out, enabled: enabled}
}

// Start spawns the ticking goroutine. The derived context lives only for
// this Start/Stop cycle; each exchange gets a fresh one.
func (i *Indicator) Start(ctx context.Context) {
	if !i.enabled {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	i.cancel = cancel
	i.done = make(chan struct{})

	go i.run(ctx, i.done)
}

// Stop cancels the indicator and blocks until its goroutine has fully
// exited. Stopping a disabled or never-started indicator is a no-op.
func (i *Indicator) Stop() {
	if !i.enabled || i.cancel == nil {
		return
	}

	i.cancel()
	<-i.done
	i.cancel = nil
	i.done = nil
}

func (i *Indicator) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	fmt.Fprint(i.out, "\nLoading")
	for {
		fmt.Fprint(i.out, ".")
		select {
		case <-ctx.Done():
			fmt.Fprintln(i.out)
			return
		case <-time.After(TickInterval):
		}
	}
}
