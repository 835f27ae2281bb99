// SPDX-License-Identifier: MIT

// Command economy runs the labor allocation economy for a number of ticks and
// prints a report per tick.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlopt/config"
	"github.com/katalvlaran/lvlopt/economy"
	"github.com/katalvlaran/lvlopt/logger"
	"github.com/katalvlaran/lvlopt/report"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	samplePath := flag.String("sample", "", "write a sample config to this path and exit")
	ticks := flag.Int("ticks", config.DefaultTicks, "number of ticks to run")
	pop := flag.Float64("pop", economy.DefaultPopulation, "population")
	beta := flag.Float64("beta", economy.DefaultDamping, "solver damping (0 = Gauss-Newton)")
	steps := flag.Int("steps", economy.DefaultSolverSteps, "solver steps per tick")
	logLevel := flag.String("log-level", string(config.LogLevelInfo), "debug, info, warn or error")
	plotPath := flag.String("plot", "", "write a labor allocation chart (.png, .svg, .pdf)")
	quiet := flag.Bool("quiet", false, "show a progress bar instead of per-tick reports")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: economy [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *samplePath != "" {
		if err := config.CreateSample(*samplePath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	// Flags given explicitly win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ticks":
			cfg.Ticks = *ticks
		case "pop":
			cfg.Economy.Population = float32(*pop)
		case "beta":
			cfg.Economy.Damping = *beta
		case "steps":
			cfg.Economy.SolverSteps = *steps
		case "log-level":
			cfg.LogLevel = config.LogLevel(*logLevel)
		case "plot":
			cfg.Plot = *plotPath
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := logger.Must(cfg.LogLevel.Zap())
	defer func() { _ = log.Sync() }()

	if err := run(cfg, *quiet, log); err != nil {
		log.Error("economy failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, quiet bool, log *zap.Logger) error {
	e, err := economy.New(cfg.Economy, economy.WithLogger(log))
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var bar *progressbar.ProgressBar
	if quiet {
		bar = progressbar.Default(int64(cfg.Ticks), "Ticking economy")
	}

	history := make([]economy.Snapshot, 0, cfg.Ticks)
	for i := 0; i < cfg.Ticks; i++ {
		snap, err := e.Tick()
		if err != nil {
			return err
		}
		history = append(history, snap)
		if bar != nil {
			_ = bar.Add(1)
			continue
		}
		if err = report.Console(out, snap); err != nil {
			return err
		}
	}

	if cfg.Plot != "" {
		if err = report.PlotLaborers(history, cfg.Plot); err != nil {
			return err
		}
		log.Info("chart written", zap.String("path", cfg.Plot))
	}

	return nil
}
