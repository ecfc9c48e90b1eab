package generator

import (
	"errors"

	"github.com/stealthrocket/generator/internal/coroutine"
)

var (
	// ErrEndOfSequence is returned by Iterator.Next when the producer has
	// completed and no value remains.
	ErrEndOfSequence = errors.New("generator: end of sequence")

	// ErrIllegalEmission is wrapped by the panic value of Emitter.Emit and
	// Yield when they are called outside of the producer that owns them.
	ErrIllegalEmission = errors.New("generator: illegal emission context")
)

// PanicError is the error reported by an iterator when its producer panicked.
// The value passed to panic is available through Value, and through Unwrap if
// it was an error.
type PanicError = coroutine.PanicError
