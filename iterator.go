package generator

import "github.com/stealthrocket/generator/internal/coroutine"

type state uint8

const (
	// No value is buffered; the next query advances the producer.
	fresh state = iota
	// A value emitted by the producer is buffered and has not been read.
	valueReady
	// The producer completed and no value remains.
	exhausted
)

// Iterator pulls values from one execution of a producer function.
//
// Each value is produced on demand: the producer is advanced at most once per
// value, whether the program calls HasNext any number of times before calling
// Next, or calls Next directly.
//
// Iterators are not safe for concurrent use by multiple goroutines.
type Iterator[T any] struct {
	co      *coroutine.Coroutine
	emitter *Emitter[T]
	state   state
}

// HasNext reports whether a value is available, advancing the producer until
// it emits a value or completes if none was buffered. Calling HasNext multiple
// times without calling Next returns the same result and does not advance the
// producer again.
//
// If the producer fails, the error is returned once and the iterator is
// exhausted.
func (it *Iterator[T]) HasNext() (bool, error) {
	switch it.state {
	case valueReady:
		return true, nil
	case exhausted:
		return false, nil
	}

	if it.co.Next() {
		it.state = valueReady
		return true, nil
	}
	it.state = exhausted
	return false, it.co.Err()
}

// Next returns the next value of the sequence, advancing the producer if no
// value was buffered by a previous call to HasNext.
//
// When the sequence is exhausted, Next returns ErrEndOfSequence. If the
// producer fails, its error is returned instead, and subsequent calls return
// ErrEndOfSequence.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	ok, err := it.HasNext()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrEndOfSequence
	}
	v := it.emitter.value
	it.emitter.value = zero
	it.state = fresh
	return v, nil
}

// Stop releases the producer of an iteration which is not going to be
// consumed to completion. The producer's stack is unwound, running its
// deferred calls, and the iterator is exhausted.
//
// Calling Stop is optional; an abandoned iterator simply leaves its producer
// suspended forever. Stop is idempotent, and has no effect once the iterator is
// exhausted.
func (it *Iterator[T]) Stop() {
	it.co.Stop()
	var zero T
	it.emitter.value = zero
	it.state = exhausted
}
