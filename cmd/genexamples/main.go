package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var cmdRoot = &cobra.Command{
	Use:           "genexamples",
	Short:         "Demonstrate generators backed by suspended producers",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	cmdRoot.AddCommand(
		cmdNested,
		cmdCleanup,
		cmdRange,
		cmdConcurrent,
		cmdWatch,
	)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("genexamples: ")

	if err := cmdRoot.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
