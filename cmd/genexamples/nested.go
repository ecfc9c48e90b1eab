package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stealthrocket/generator"
	"github.com/stealthrocket/generator/internal/gls"
	"github.com/stealthrocket/generator/stream"
)

var cmdNested = &cobra.Command{
	Use:   "nested",
	Short: "Iterate a producer which forwards the values of another one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "consumer goroutine: %d\n", gls.Current())

		for s, err := range greetings.All() {
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Text: %s\n", s)
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Now using streams:")
		return stream.Of(greetings).Limit(2).ForEach(func(s string) {
			fmt.Fprintln(w, s)
		})
	},
}

var greetings = generator.NewFunc(func(e *generator.Emitter[string]) error {
	e.Emit(fmt.Sprintf("Hello - %d", gls.Current()))
	e.Emit(fmt.Sprintf("World - %d", gls.Current()))

	for s, err := range others.All() {
		if err != nil {
			return err
		}
		e.Emit("nested: " + s)
	}

	e.Emit(fmt.Sprintf("bye - %d", gls.Current()))
	return nil
})

var others = generator.New(func(e *generator.Emitter[string]) {
	e.Emit("it can")
	e.Emit("also be")
	e.Emit("nested")
})
