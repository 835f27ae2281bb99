// SPDX-License-Identifier: MIT

package economy

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultPopulation           = 100.0
	DefaultInitialLaborers      = 1.0
	DefaultFoodPerCapita        = 0.5
	DefaultOverproductionTarget = 1.01
	DefaultMinWorkforce         = 0.01
	DefaultMinProductivity      = 0.1
	DefaultWorkingShare         = 1.0
	DefaultDamping              = 0.001
	DefaultSolverSteps          = 1
	DefaultApproxDepth          = 5

	// MaxApproxDepth bounds the flow recursion, whose cost grows
	// exponentially with depth.
	MaxApproxDepth = 16
)

// ErrInvalidConfig is returned by New for an unusable Config.
var ErrInvalidConfig = errors.New("economy: invalid config")

// Config holds the model parameters of an Economy.
type Config struct {
	Population      float32 `json:"population"`
	InitialLaborers float32 `json:"initial_laborers"` // per labor
	FoodPerCapita   float32 `json:"food_per_capita"`

	// OverproductionTarget is the supply/demand ratio the redistribution aims for.
	OverproductionTarget float32 `json:"overproduction_target"`
	// MinWorkforce keeps every industry staffed so production never stalls.
	MinWorkforce float32 `json:"min_workforce"`
	// MinProductivity bounds the productivity divisor of the regression matrix.
	MinProductivity float32 `json:"min_productivity"`
	WorkingShare    float32 `json:"working_share"`

	Damping     float64 `json:"damping"`
	SolverSteps int     `json:"solver_steps"`
	ApproxDepth int     `json:"approx_depth"`
}

// DefaultConfig returns the parameters of the reference economy.
func DefaultConfig() Config {
	return Config{
		Population:           DefaultPopulation,
		InitialLaborers:      DefaultInitialLaborers,
		FoodPerCapita:        DefaultFoodPerCapita,
		OverproductionTarget: DefaultOverproductionTarget,
		MinWorkforce:         DefaultMinWorkforce,
		MinProductivity:      DefaultMinProductivity,
		WorkingShare:         DefaultWorkingShare,
		Damping:              DefaultDamping,
		SolverSteps:          DefaultSolverSteps,
		ApproxDepth:          DefaultApproxDepth,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case !positive(c.Population):
		return fmt.Errorf("population %v: %w", c.Population, ErrInvalidConfig)
	case !nonNegative(c.InitialLaborers):
		return fmt.Errorf("initial_laborers %v: %w", c.InitialLaborers, ErrInvalidConfig)
	case !nonNegative(c.FoodPerCapita):
		return fmt.Errorf("food_per_capita %v: %w", c.FoodPerCapita, ErrInvalidConfig)
	case !positive(c.OverproductionTarget):
		return fmt.Errorf("overproduction_target %v: %w", c.OverproductionTarget, ErrInvalidConfig)
	case !positive(c.MinWorkforce):
		return fmt.Errorf("min_workforce %v: %w", c.MinWorkforce, ErrInvalidConfig)
	case !positive(c.MinProductivity):
		return fmt.Errorf("min_productivity %v: %w", c.MinProductivity, ErrInvalidConfig)
	case !positive(c.WorkingShare) || c.WorkingShare > 1:
		return fmt.Errorf("working_share %v: %w", c.WorkingShare, ErrInvalidConfig)
	case math.IsNaN(c.Damping) || math.IsInf(c.Damping, 0) || c.Damping < 0:
		return fmt.Errorf("damping %v: %w", c.Damping, ErrInvalidConfig)
	case c.SolverSteps < 1:
		return fmt.Errorf("solver_steps %d: %w", c.SolverSteps, ErrInvalidConfig)
	case c.ApproxDepth < 0 || c.ApproxDepth > MaxApproxDepth:
		return fmt.Errorf("approx_depth %d: %w", c.ApproxDepth, ErrInvalidConfig)
	}

	return nil
}

func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 0)
}

func nonNegative(v float32) bool {
	return v >= 0 && !math.IsInf(float64(v), 0)
}
