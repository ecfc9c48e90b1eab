package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fd0/termstatus"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stealthrocket/generator/fswatch"
	"github.com/stealthrocket/generator/stream"
)

var watchCount int

func init() {
	fs := cmdWatch.Flags()
	fs.IntVarP(&watchCount, "count", "c", 10, "exit after `n` events")
}

var cmdWatch = &cobra.Command{
	Use:   "watch PATH...",
	Short: "Print filesystem events pulled from an endless generator",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		term := termstatus.New(os.Stdout, os.Stderr, false)
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			term.Run(ctx)
			return nil
		})

		g.Go(func() error {
			defer cancel()
			n := 0
			err := stream.Of(fswatch.Events(args...)).Limit(watchCount).ForEach(func(event fsnotify.Event) {
				n++
				term.Printf("%s %s\n", event.Op, event.Name)
				term.SetStatus([]string{fmt.Sprintf("%d/%d events", n, watchCount)})
			})
			term.SetStatus(nil)
			if err != nil {
				log.Printf("watch: %v", err)
			}
			return err
		})

		return g.Wait()
	},
}
