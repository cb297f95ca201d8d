// Package main provides the entry point for the patterns CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/axiomhq/patterns/internal/cli"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := cli.New().WithOutput(stdout, stderr).WithInput(stdin)

	if err := app.ExecuteWithArgs(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
