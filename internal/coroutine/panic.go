package coroutine

import (
	"fmt"
	"runtime/debug"
)

// PanicError wraps a value recovered from a panic in a coroutine, along with
// the stack trace of the goroutine at the time it panicked.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{
		value: v,
		stack: debug.Stack(),
	}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("%v", p.value)
}

// Value returns the value that was passed to panic.
func (p *PanicError) Value() any { return p.value }

// Stack returns the stack trace captured when the panic was recovered.
func (p *PanicError) Stack() []byte { return p.stack }

// ErrorWithStack returns the error message followed by the stack trace.
func (p *PanicError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", p.value, p.stack)
}

func (p *PanicError) Unwrap() error {
	err, _ := p.value.(error)
	return err
}
