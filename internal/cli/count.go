package cli

import (
	"github.com/spf13/cobra"

	"github.com/axiomhq/patterns/internal/config"
	"github.com/axiomhq/patterns/internal/corpus"
	"github.com/axiomhq/patterns/internal/logging"
	"github.com/axiomhq/patterns/internal/pipeline"
)

// loadConfig reads the --config file, or the defaults when none is given,
// and applies any flag the user set on top.
func (a *App) loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if a.flags.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(a.flags.configPath); err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if fs.Changed("workers") {
		cfg.Workers = a.flags.workers
	}
	if fs.Changed("strategy") {
		cfg.Strategy = a.flags.strategy
	}
	if fs.Changed("domain") {
		cfg.Domain = a.flags.domain
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = a.flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Log.Output = a.stderr
	return cfg, nil
}

// count runs the pipeline over the configured corpus.
func (a *App) count(cmd *cobra.Command, args []string) (*pipeline.Result, error) {
	cfg, err := a.loadConfig(cmd, args)
	if err != nil {
		return nil, err
	}

	p, err := pipeline.New(
		pipeline.WithWorkers(cfg.Workers),
		pipeline.WithStrategy(cfg.StrategyValue()),
		pipeline.WithLogger(logging.New(cfg.Log)),
	)
	if err != nil {
		return nil, err
	}

	src := corpus.File{Path: cfg.Input, Domain: cfg.DomainValue()}
	if src.Path == corpus.Stdin {
		src.Stdin = cmd.InOrStdin()
	}
	return p.Run(src)
}
