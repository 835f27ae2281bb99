// SPDX-License-Identifier: MIT

// Command newtongauss solves 2x+y = 3, 3x = 3 with five damped Gauss-Newton
// steps from (10.4, 0.4) and prints every iterate with its squared residual.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlopt/config"
	"github.com/katalvlaran/lvlopt/logger"
	"github.com/katalvlaran/lvlopt/lsq"
	"github.com/katalvlaran/lvlopt/matrix"
)

func main() {
	steps := flag.Int("steps", 5, "number of steps")
	beta := flag.Float64("beta", 0, "damping (0 = Gauss-Newton)")
	logLevel := flag.String("log-level", string(config.LogLevelWarn), "debug, info, warn or error")
	flag.Parse()

	log := logger.Must(config.LogLevel(*logLevel).Zap())
	defer func() { _ = log.Sync() }()

	if *beta < 0 {
		fmt.Fprintln(os.Stderr, "error: -beta must be >= 0")
		os.Exit(1)
	}

	a, err := matrix.FromRows([][]float32{{2, 1}, {3, 0}})
	if err != nil {
		log.Fatal("build system", zap.Error(err))
	}
	model, err := lsq.NewLinearModel(a, matrix.NewVector[float32](3, 3), float32(lsq.DefaultJacobianScale))
	if err != nil {
		log.Fatal("build model", zap.Error(err))
	}
	solver := lsq.NewSolver[float32](lsq.WithDamping(*beta), lsq.WithLogger(log))

	x := matrix.NewVector[float32](10.4, 0.4)
	for i := 0; i < *steps; i++ {
		next, res, err := solver.Step(model, x)
		if err != nil {
			log.Fatal("step failed", zap.Int("step", i), zap.Error(err))
		}
		x = next
		x0, _ := x.Vec(0)
		x1, _ := x.Vec(1)
		fmt.Printf("[%g %g] %g\n", x0, x1, res.Error1)
	}
}
