// Package stream provides lazy pipeline operators over generator sequences.
//
// A Stream pulls values from a single iteration of a generator.Source, one at a
// time and only when its consumer asks for them. Stages do not buffer values:
// the only value held between pulls is the one buffered by the underlying
// iterator.
package stream

import (
	"iter"

	"github.com/juju/ratelimit"

	"github.com/stealthrocket/generator"
)

// Stream is a lazily evaluated sequence of values. A Stream can only be
// consumed once.
type Stream[T any] struct {
	pull func() (T, bool, error)
	stop func()
}

// Of returns a Stream over a new iteration of src.
func Of[T any](src *generator.Source[T]) *Stream[T] {
	return FromIterator(src.Iterator())
}

// FromIterator returns a Stream over the remaining values of it.
func FromIterator[T any](it *generator.Iterator[T]) *Stream[T] {
	return &Stream[T]{
		pull: func() (v T, ok bool, err error) {
			if ok, err = it.HasNext(); !ok || err != nil {
				return v, false, err
			}
			v, err = it.Next()
			return v, err == nil, err
		},
		stop: it.Stop,
	}
}

// Limit returns a Stream of at most the first n values of s. Once n values
// were pulled, the underlying iteration is stopped without being advanced.
func (s *Stream[T]) Limit(n int) *Stream[T] {
	pulled := 0
	return &Stream[T]{
		pull: func() (v T, ok bool, err error) {
			if pulled >= n {
				s.stop()
				return v, false, nil
			}
			pulled++
			return s.pull()
		},
		stop: s.stop,
	}
}

// Skip returns a Stream of the values of s after the first n.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	skipped := 0
	return &Stream[T]{
		pull: func() (v T, ok bool, err error) {
			for ; skipped < n; skipped++ {
				if _, ok, err = s.pull(); !ok {
					return v, false, err
				}
			}
			return s.pull()
		},
		stop: s.stop,
	}
}

// Filter returns a Stream of the values of s for which keep returns true.
func (s *Stream[T]) Filter(keep func(T) bool) *Stream[T] {
	return &Stream[T]{
		pull: func() (v T, ok bool, err error) {
			for {
				if v, ok, err = s.pull(); !ok || keep(v) {
					return v, ok, err
				}
			}
		},
		stop: s.stop,
	}
}

// Map returns a Stream of the values of s transformed by f.
func Map[T, U any](s *Stream[T], f func(T) U) *Stream[U] {
	return &Stream[U]{
		pull: func() (u U, ok bool, err error) {
			v, ok, err := s.pull()
			if ok {
				u = f(v)
			}
			return u, ok, err
		},
		stop: s.stop,
	}
}

// Throttle returns a Stream which pulls at most perSecond values per second
// from s, blocking the consumer until the next value is allowed.
func Throttle[T any](s *Stream[T], perSecond float64) *Stream[T] {
	bucket := ratelimit.NewBucketWithRate(perSecond, 1)
	return &Stream[T]{
		pull: func() (T, bool, error) {
			bucket.Wait(1)
			return s.pull()
		},
		stop: s.stop,
	}
}

// Next pulls the next value of the stream. It returns false when the stream is
// exhausted, along with the producer's error if it failed.
func (s *Stream[T]) Next() (T, bool, error) {
	return s.pull()
}

// Stop releases the iteration underlying the stream.
func (s *Stream[T]) Stop() {
	s.stop()
}

// ForEach calls f for each value of the stream, returning the producer's error
// if it failed.
func (s *Stream[T]) ForEach(f func(T)) error {
	for {
		v, ok, err := s.pull()
		if !ok {
			return err
		}
		f(v)
	}
}

// ToSlice collects the values of the stream. If the producer failed, the values
// pulled before the failure are returned along with the error.
func (s *Stream[T]) ToSlice() ([]T, error) {
	var values []T
	err := s.ForEach(func(v T) { values = append(values, v) })
	return values, err
}

// First returns the first value of the stream and stops the underlying
// iteration.
func (s *Stream[T]) First() (T, bool, error) {
	defer s.stop()
	return s.pull()
}

// Seq returns an iterator over the values of the stream, for use with range
// loops. If the producer fails, its error is yielded last with the zero value
// of T. Breaking out of the loop stops the stream.
func (s *Stream[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer s.stop()
		for {
			v, ok, err := s.pull()
			if err != nil {
				yield(v, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}
