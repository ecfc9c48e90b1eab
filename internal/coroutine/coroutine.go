// Package coroutine implements the suspension primitive that powers
// generators: a function running on its own goroutine which hands control
// back and forth with the goroutine driving it, so that only one of the two
// ever runs at any given time.
package coroutine

import (
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/stealthrocket/generator/internal/gls"
)

// ErrStopped is the panic value seen by a coroutine that attempts to suspend
// after it has been stopped, for example from a deferred function running
// while its stack unwinds.
var ErrStopped = errors.New("coroutine: cannot suspend a coroutine that has been stopped")

// Coroutine instances expose APIs allowing the program to drive the execution
// of a function which can suspend itself by calling Suspend.
//
// A Coroutine must be driven by a single goroutine at a time; the methods
// Next and Stop are not safe for concurrent use. Done and Owner may be called
// from any goroutine.
type Coroutine struct {
	entry func() error
	bind  any

	next    chan struct{}
	started bool
	stop    bool
	err     error

	owner atomic.Int64
	done  atomic.Bool
}

// New creates a new coroutine which executes f as entry point. The value bind
// is stored in the goroutine local storage of the goroutine running f for the
// whole duration of its execution.
//
// No goroutine is started until the first call to Next.
func New(f func() error, bind any) *Coroutine {
	return &Coroutine{
		entry: f,
		bind:  bind,
		next:  make(chan struct{}),
	}
}

// Next executes the coroutine until its next suspension point, or until
// completion. The method returns true if the coroutine is suspended, and false
// once it has completed, after which Err reports how it completed.
func (c *Coroutine) Next() bool {
	if c.done.Load() {
		return false
	}
	if !c.started {
		c.started = true
		go c.run()
	}
	c.next <- struct{}{}
	_, ok := <-c.next
	return ok
}

// Suspend pauses the coroutine and hands control back to the goroutine blocked
// in Next, until Next is called again. It must only be called by the goroutine
// running the coroutine.
//
// If the coroutine is stopped while suspended, Suspend does not return; the
// goroutine exits instead, running deferred calls on its way out.
func (c *Coroutine) Suspend() {
	if c.stop {
		panic(ErrStopped)
	}
	c.next <- struct{}{}
	<-c.next
	if c.stop {
		runtime.Goexit()
	}
}

// Stop interrupts the coroutine. If it is suspended, its stack is unwound and
// deferred calls run before Stop returns. If it was never started, the entry
// point will never be called.
//
// Stop is idempotent, calling it multiple times or after completion of the
// coroutine has no effect.
func (c *Coroutine) Stop() {
	if c.done.Load() {
		return
	}
	c.stop = true
	if !c.started {
		c.done.Store(true)
		return
	}
	c.next <- struct{}{}
	for range c.next {
	}
}

// Stopping reports whether Stop was called. Like Suspend, it must only be
// called by the goroutine running the coroutine.
func (c *Coroutine) Stopping() bool { return c.stop }

// Done returns true if the coroutine completed, either because it was stopped
// or because its entry point returned.
func (c *Coroutine) Done() bool { return c.done.Load() }

// Owner returns the goroutine running the coroutine, or gls.None if it was
// never started.
func (c *Coroutine) Owner() gls.G { return gls.G(c.owner.Load()) }

// Err returns the error that the entry point returned, or a *PanicError if it
// panicked. The value is only meaningful after Next has returned false.
func (c *Coroutine) Err() error { return c.err }

func (c *Coroutine) run() {
	g := gls.Current()
	c.owner.Store(int64(g))
	if c.bind != nil {
		g.Store(c.bind)
	}

	defer func() {
		// recover returns nil when the goroutine exits through
		// runtime.Goexit, which is treated as a normal completion.
		if p := recover(); p != nil {
			c.err = newPanicError(p)
		}
		g.Clear()
		c.done.Store(true)
		close(c.next)
	}()

	<-c.next

	if !c.stop {
		c.err = c.entry()
	}
}
