package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lucasgdosr/lists/internal/config"
	"github.com/lucasgdosr/lists/internal/report"
	"github.com/lucasgdosr/lists/internal/workload"
)

func main() {
	var (
		configPath string
		debug      bool
	)

	flag.StringVar(&configPath, "config", "configs/uniform.toml", "Path to configuration file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	logger, err := newLogger(debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(configPath, logger); err != nil {
		logger.Fatal("listbench failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(configPath string, logger *zap.Logger) error {
	c, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	runner := workload.NewRunner(c.Spec(), logger)
	results := make([]workload.Result, 0, len(c.Lists))
	var errs []error
	for _, name := range c.Lists {
		res, err := runner.Run(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("run %s: %w", name, err))
			continue
		}
		results = append(results, res)
	}

	report.Write(os.Stdout, results)
	return errors.Join(errs...)
}
