// Package generator lets a producer function emit a sequence of values one at
// a time, while a consumer pulls them through an iterator.
//
// The producer is written in ordinary imperative style and runs lazily: it
// only advances as far as the consumer asks it to, suspending each time it
// emits a value.
//
//	src := generator.New(func(e *generator.Emitter[int]) {
//		for i := 0; ; i++ {
//			e.Emit(i)
//		}
//	})
//
//	it := src.Iterator()
//	defer it.Stop()
//	for i := 0; i < 3; i++ {
//		v, err := it.Next()
//		...
//	}
//
// Each producer runs on its own goroutine, and control is handed back and forth
// with the goroutine driving the iterator so that only one of the two runs at
// any given time. Emitting from any other goroutine, or after the iteration has
// completed, panics with an error wrapping ErrIllegalEmission.
//
// # Cleanup
//
// An iteration which is abandoned before it completes leaves its producer
// suspended at the point where it last emitted a value. Deferred calls of the
// producer only run if the iteration completes, or if Stop is called on the
// iterator. Cleanup code which must always run should enclose the entire
// iteration rather than be deferred inside the producer:
//
//	f, err := os.Open(name)
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	for line, err := range lines(f).All() {
//		...
//	}
package generator
