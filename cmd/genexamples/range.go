package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/constraints"

	"github.com/stealthrocket/generator"
	"github.com/stealthrocket/generator/stream"
)

type rangeOptions struct {
	From  int
	To    int
	Rate  float64
	Limit int
}

var globalRangeOptions rangeOptions

func (opts *rangeOptions) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&opts.From, "from", 0, "first `value` of the range")
	fs.IntVar(&opts.To, "to", 10, "last `value` of the range, inclusive")
	fs.Float64Var(&opts.Rate, "rate", 0, "emit at most `n` values per second (0 means unlimited)")
	fs.IntVar(&opts.Limit, "limit", 0, "stop after `n` values (0 means no limit)")
}

func (opts *rangeOptions) valid() error {
	if opts.Rate < 0 {
		return errors.New("rate must not be negative")
	}
	if opts.Limit < 0 {
		return errors.New("limit must not be negative")
	}
	return nil
}

func init() {
	globalRangeOptions.addFlags(cmdRange.Flags())
}

var cmdRange = &cobra.Command{
	Use:   "range",
	Short: "Print a range of integers produced by a generator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := &globalRangeOptions
		if err := opts.valid(); err != nil {
			return err
		}

		s := stream.Of(span(opts.From, opts.To))
		if opts.Rate > 0 {
			s = stream.Throttle(s, opts.Rate)
		}
		if opts.Limit > 0 {
			s = s.Limit(opts.Limit)
		}

		w := cmd.OutOrStdout()
		return s.ForEach(func(i int) {
			fmt.Fprintln(w, i)
		})
	},
}

// span produces the integers from first to last, counting down if last is
// smaller than first.
func span[T constraints.Integer](first, last T) *generator.Source[T] {
	return generator.New(func(e *generator.Emitter[T]) {
		if first <= last {
			for i := first; ; i++ {
				e.Emit(i)
				if i == last {
					return
				}
			}
		}
		for i := first; ; i-- {
			e.Emit(i)
			if i == last {
				return
			}
		}
	})
}
