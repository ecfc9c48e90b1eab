package generator

import (
	"fmt"

	"github.com/stealthrocket/generator/internal/coroutine"
	"github.com/stealthrocket/generator/internal/gls"
)

// Emitter is passed to producer functions to emit values to the iterator
// driving them.
//
// An Emitter belongs to a single iteration; it must not be retained and used
// after the producer returns, nor handed to other goroutines.
type Emitter[T any] struct {
	co *coroutine.Coroutine
	// Holds the most recently emitted value until the iterator reads it.
	value T
}

// Emit hands v to the iterator and suspends the producer until the next value
// is requested. When the producer is resumed, Emit returns and the producer
// continues from that point.
//
// Emit panics with an error wrapping ErrIllegalEmission if it is called from
// a goroutine other than the one running the producer, or after the iteration
// has completed or been stopped. If the iteration is abandoned, Emit never
// returns.
func (e *Emitter[T]) Emit(v T) {
	if err := e.check(); err != nil {
		panic(err)
	}
	e.value = v
	e.co.Suspend()
}

func (e *Emitter[T]) check() error {
	if e.co.Done() {
		return fmt.Errorf("%w: the iteration has completed", ErrIllegalEmission)
	}
	if owner, g := e.co.Owner(), gls.Current(); owner != g {
		return fmt.Errorf("%w: called on goroutine %d, the producer runs on goroutine %d", ErrIllegalEmission, g, owner)
	}
	// Safe to read once we know we are on the producer goroutine.
	if e.co.Stopping() {
		return fmt.Errorf("%w: the iteration has been stopped", ErrIllegalEmission)
	}
	return nil
}

// Yield emits v through the emitter of the producer running on the calling
// goroutine. It lets code called by a producer emit values without being
// passed the Emitter explicitly.
//
// Yield panics with an error wrapping ErrIllegalEmission when it is not called
// from a producer, or if the producer emits values of a type other than T.
func Yield[T any](v T) {
	switch e := gls.Current().Load().(type) {
	case *Emitter[T]:
		e.Emit(v)
	case nil:
		panic(fmt.Errorf("%w: generator.Yield not called from a producer", ErrIllegalEmission))
	default:
		panic(fmt.Errorf("%w: generator.Yield[%T] called from a producer of %T", ErrIllegalEmission, v, e))
	}
}
