// Package protoseq reads and writes sequences of size-delimited protobuf
// messages as generators.
package protoseq

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"

	"github.com/stealthrocket/generator"
)

// Read returns a Source of the messages read from the stream returned by open.
// Each iteration opens a new stream, and decodes messages one at a time as they
// are requested, allocating them with newMsg.
//
// The stream is closed when the iteration completes or is stopped.
func Read[M proto.Message](open func() (io.ReadCloser, error), newMsg func() M) *generator.Source[M] {
	return generator.NewFunc(func(e *generator.Emitter[M]) error {
		rc, err := open()
		if err != nil {
			return fmt.Errorf("protoseq: open: %w", err)
		}
		defer rc.Close()

		r := bufio.NewReader(rc)
		for n := 0; ; n++ {
			m := newMsg()
			if err := protodelim.UnmarshalFrom(r, m); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return fmt.Errorf("protoseq: decoding message %d: %w", n, err)
			}
			e.Emit(m)
		}
	})
}

// Write encodes the messages of a new iteration of src to w, each prefixed with
// its size. It returns the number of messages written.
func Write[M proto.Message](w io.Writer, src *generator.Source[M]) (n int, err error) {
	for m, err := range src.All() {
		if err != nil {
			return n, err
		}
		if _, err := protodelim.MarshalTo(w, m); err != nil {
			return n, fmt.Errorf("protoseq: encoding message %d: %w", n, err)
		}
		n++
	}
	return n, nil
}
