// Package cli provides the patterns command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	flags  flags
}

// flags holds the persistent flags shared by every command.
type flags struct {
	configPath string
	workers    int
	strategy   string
	domain     string
	logLevel   string
	logFormat  string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "patterns [path]",
		Short: "Count strings that share their letter pattern with another string",
		Long: `patterns reads a corpus with one string per line, encodes every string as
its first-occurrence pattern (FOOFOOFOO -> 0,1,1,0,1,1,0,1,1) and prints how
many strings have a pattern that occurs more than once.

Gzip and zstd compressed corpora are decompressed transparently. Use "-" to
read standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.count(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(app.stdout, res.Friendly)
			return err
		},
	}

	pf := app.root.PersistentFlags()
	pf.StringVarP(&app.flags.configPath, "config", "c", "", "path to a YAML configuration file")
	pf.IntVarP(&app.flags.workers, "workers", "w", 0, "worker goroutines (0 = GOMAXPROCS)")
	pf.StringVar(&app.flags.strategy, "strategy", "", "aggregation strategy: sequential or partitioned")
	pf.StringVar(&app.flags.domain, "domain", "", "accepted input bytes: bytes, ascii or upper")
	pf.StringVar(&app.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")
	pf.StringVar(&app.flags.logFormat, "log-format", "", "log format: console or json")

	app.root.AddCommand(
		app.newTopCmd(),
		app.newVersionCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithInput sets the reader used when the corpus path is "-".
func (a *App) WithInput(stdin io.Reader) *App {
	a.root.SetIn(stdin)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "patterns version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
