package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var concurrentIterations int

func init() {
	fs := cmdConcurrent.Flags()
	fs.IntVarP(&concurrentIterations, "iterations", "n", 4, "number of concurrent `iterations`")
}

var cmdConcurrent = &cobra.Command{
	Use:   "concurrent",
	Short: "Drive independent iterations of one generator in parallel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([][]string, concurrentIterations)

		var g errgroup.Group
		for i := range results {
			g.Go(func() (err error) {
				results[i], err = greetings.Collect()
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i, values := range results {
			fmt.Fprintf(w, "iteration %d: %d values, last %q\n", i, len(values), values[len(values)-1])
		}
		return nil
	},
}
