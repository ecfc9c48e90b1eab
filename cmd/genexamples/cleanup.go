package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stealthrocket/generator"
)

var cmdCleanup = &cobra.Command{
	Use:   "cleanup",
	Short: "Show where cleanup code must go when iterations can be abandoned",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "BAD CODE WITH defer INSIDE THE PRODUCER")
		if err := deferInsideProducer(w); err != nil {
			return err
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "GOOD CODE WITH defer AROUND THE ITERATION")
		return deferAroundIteration(w)
	},
}

func deferInsideProducer(w io.Writer) error {
	src := generator.New(func(e *generator.Emitter[string]) {
		// The deferred call is crossed by Emit: it does not run when the
		// iteration is abandoned.
		defer fmt.Fprintln(w, "Some very important cleanup code")
		e.Emit("Hello World")
	})

	first, err := src.Iterator().Next()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, first)
	return nil
}

func deferAroundIteration(w io.Writer) error {
	defer fmt.Fprintln(w, "Some very important cleanup code")

	src := generator.New(func(e *generator.Emitter[string]) {
		e.Emit("Hello World")
	})

	first, err := src.Iterator().Next()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, first)
	return nil
}
