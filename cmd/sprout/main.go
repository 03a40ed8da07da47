// Where: cli/cmd/sprout/main.go
// What: CLI entrypoint.
// Why: Execute sprout commands with configured dependencies.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/poruru/sprout/cli/internal/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, flush, err := buildDependencies(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer flush()

	return commands.Run(os.Args[1:], deps)
}
