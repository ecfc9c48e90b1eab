package generator

import (
	"iter"

	"github.com/stealthrocket/generator/internal/coroutine"
)

// Source is a reusable sequence of values produced by a function.
//
// Every call to Iterator begins an independent iteration which calls the
// producer function from the start. A Source may be iterated concurrently by
// multiple goroutines as long as the producer function is itself safe to call
// concurrently.
type Source[T any] struct {
	produce func(*Emitter[T]) error
}

// New creates a Source of values emitted by f.
func New[T any](f func(*Emitter[T])) *Source[T] {
	return NewFunc(func(e *Emitter[T]) error {
		f(e)
		return nil
	})
}

// NewFunc creates a Source of values emitted by f. If f returns an error, the
// sequence ends and the error is reported by the iterator.
func NewFunc[T any](f func(*Emitter[T]) error) *Source[T] {
	return &Source[T]{produce: f}
}

// Supplier creates a Source from a function which emits values by calling
// Yield[T], and whose return value is emitted as the last element of the
// sequence. If f returns an error, no final element is emitted and the error is
// reported by the iterator instead.
func Supplier[T any](f func() (T, error)) *Source[T] {
	return NewFunc(func(e *Emitter[T]) error {
		v, err := f()
		if err != nil {
			return err
		}
		e.Emit(v)
		return nil
	})
}

// Iterator begins a new iteration of the sequence. The producer function does
// not run until a value is requested from the returned iterator.
func (s *Source[T]) Iterator() *Iterator[T] {
	e := new(Emitter[T])
	e.co = coroutine.New(func() error { return s.produce(e) }, e)
	return &Iterator[T]{co: e.co, emitter: e}
}

// All returns an iterator over the values of a new iteration of the sequence,
// for use with range loops. If the producer fails, its error is yielded last
// with the zero value of T. Breaking out of the loop stops the iteration.
func (s *Source[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := s.Iterator()
		defer it.Stop()

		for {
			ok, err := it.HasNext()
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			v, _ := it.Next()
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect runs a new iteration of the sequence to completion and returns the
// values it produced, along with the producer's error if it failed.
func (s *Source[T]) Collect() ([]T, error) {
	var values []T
	for v, err := range s.All() {
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}
