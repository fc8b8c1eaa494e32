// chess-puzzles solves and verifies single-player chess capture puzzles.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitSuccess  = 0
	exitFailures = 1 // verify found puzzles that failed
	exitError    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errPuzzlesFailed):
		return exitFailures
	default:
		return exitError
	}
}
