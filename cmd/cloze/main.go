// Command cloze checks dictation answers from the terminal.
//
// Exit codes: 0 = success, 1 = attempt incorrect (with --strict), 2 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/panjuncai/Sola-sub000/internal/cli"
)

func main() {
	os.Exit(run(os.Stderr))
}

func run(stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return exitCode(stderr, cli.Execute(ctx))
}

func exitCode(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrIncorrect):
		return 1
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
}
