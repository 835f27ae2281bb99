// SPDX-License-Identifier: MIT

package economy

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlopt/flowinv"
	"github.com/katalvlaran/lvlopt/lsq"
	"github.com/katalvlaran/lvlopt/matrix"
)

// minDenominator guards supply and demand ratios against division by zero.
const minDenominator = 0.00001

// productivityKeyScale quantizes availabilities before picking the limiting
// input, so near-equal inputs resolve to the first one in recipe order.
const productivityKeyScale = 100000

// Productivity is the share of a labor's recipe that could run last tick.
// Limiting is meaningful only when HasLimit is true.
type Productivity struct {
	Value    float32
	Limiting Good
	HasLimit bool
}

// Economy is the mutable state of a single simulated economy.
// It is not safe for concurrent use.
type Economy struct {
	cfg    Config
	solver *lsq.Solver[float32]
	logger *zap.Logger
	tick   int

	laborers     [NumLabors]float32
	productivity [NumLabors]Productivity
	available    [NumGoods]float32
	laborValue   [NumGoods]float32
	price        [NumGoods]float32
	output       [NumGoods]float32
	demand       [NumGoods]float32
}

// Option configures an Economy.
type Option func(*Economy)

// WithLogger routes tick diagnostics to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(e *Economy) {
		if l == nil {
			l = zap.NewNop()
		}
		e.logger = l
	}
}

// New builds an Economy with every labor staffed by cfg.InitialLaborers.
//
// Errors:
//   - ErrInvalidConfig (wrapped with the offending field).
func New(cfg Config, opts ...Option) (*Economy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("economy.New: %w", err)
	}
	e := &Economy{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.solver = lsq.NewSolver[float32](lsq.WithDamping(cfg.Damping), lsq.WithLogger(e.logger.Named("lsq")))
	for i := range e.laborers {
		e.laborers[i] = cfg.InitialLaborers
	}

	return e, nil
}

// Population returns the configured population.
func (e *Economy) Population() float32 { return e.cfg.Population }

// Laborers returns the current allocation indexed by Labor.
func (e *Economy) Laborers() [NumLabors]float32 { return e.laborers }

// Tick advances the economy by one step and reports the resulting state.
//
// Implementation:
//   - Stage 1: derive availability, prices and demand from the current allocation.
//   - Stage 2: derive labor values.
//   - Stage 3: redistribute laborers with damped Gauss–Newton steps.
//   - Stage 4: compare the flow approximation of the net coefficient inverse
//     with the exact regularized operator.
//
// A solver failure leaves availability, prices and labor values updated but
// the allocation untouched.
func (e *Economy) Tick() (Snapshot, error) {
	e.deriveAvailableGoods()
	e.deriveLaborValues()
	steps, err := e.redistributeLaborers()
	if err != nil {
		return Snapshot{}, fmt.Errorf("economy.Tick %d: %w", e.tick, err)
	}
	gap := e.inverseGap()

	snap := e.snapshot(steps, gap)
	e.logger.Debug("tick",
		zap.Int("tick", e.tick),
		zap.Float32("lazy_percent", snap.LazyPercent),
		zap.Float32("inverse_gap", gap))
	e.tick++

	return snap, nil
}

func (e *Economy) deriveAvailableGoods() {
	var supply, demand [NumGoods]float32

	for _, labor := range Labors {
		industry := labor.Industry()
		laborers := e.laborers[labor]

		prod := Productivity{Value: 1}
		bestKey := int64(math.MaxInt64)
		for _, in := range industry.Inputs {
			avail := min(max(e.available[in.Good], 0), 1)
			if key := int64(avail * productivityKeyScale); key < bestKey {
				bestKey = key
				prod = Productivity{Value: avail, Limiting: in.Good, HasLimit: true}
			}
			demand[in.Good] += in.Amount * laborers
		}
		e.productivity[labor] = prod

		for _, out := range industry.Outputs {
			supply[out.Good] += out.Amount * laborers * prod.Value
		}
	}

	demand[Food] = e.cfg.Population * e.cfg.FoodPerCapita

	for _, g := range Goods {
		e.available[g] = supply[g] / max(demand[g], minDenominator)
		e.price[g] = demand[g] / max(supply[g], minDenominator)
		e.demand[g] = demand[g]
	}
}

// deriveLaborValues propagates labor hours forward through the supply chain.
// Outputs with zero volume carry no information and are skipped.
func (e *Economy) deriveLaborValues() {
	var totalValue, produced [NumGoods]float32
	const laborTime = 1

	for _, labor := range Labors {
		industry := labor.Industry()
		var inputValue float32
		for _, in := range industry.Inputs {
			inputValue += e.laborValue[in.Good] * in.Amount
		}
		for _, out := range industry.Outputs {
			volume := out.Amount * e.laborers[labor] * e.productivity[labor].Value
			if volume == 0 {
				continue
			}
			totalValue[out.Good] += (inputValue + laborTime) / volume
			produced[out.Good] += volume
		}
	}

	for _, g := range Goods {
		e.laborValue[g] = totalValue[g] / max(produced[g], minDenominator)
		e.output[g] = produced[g]
	}
}

// redistributeLaborers fits the allocation so that supply/demand of every
// good approaches the overproduction target, then rescales the result to the
// working population.
func (e *Economy) redistributeLaborers() ([]lsq.StepResult[float32], error) {
	x, err := e.regressionMatrix()
	if err != nil {
		return nil, err
	}
	y, err := matrix.FromFunc(NumGoods, 1, func(int, int) float32 { return e.cfg.OverproductionTarget })
	if err != nil {
		return nil, err
	}
	model, err := lsq.NewLinearModel(x, y, float32(lsq.DefaultJacobianScale))
	if err != nil {
		return nil, err
	}
	beta0, err := matrix.FromFunc(NumLabors, 1, func(i, _ int) float32 { return e.laborers[i] })
	if err != nil {
		return nil, err
	}

	beta, steps, err := e.solver.Iterate(model, beta0, e.cfg.SolverSteps)
	if err != nil {
		return nil, err
	}

	// Negative allocations are floored before totaling so they cannot hide
	// an overcommitted workforce.
	var total float32
	for i := range e.laborers {
		v, _ := beta.Vec(i) // NumLabors×1 by construction
		e.laborers[i] = max(v, e.cfg.MinWorkforce)
		total += e.laborers[i]
	}

	working := e.cfg.Population * e.cfg.WorkingShare
	factor := float32(1)
	if total > working {
		factor = working / total
	}
	for i := range e.laborers {
		e.laborers[i] = max(e.laborers[i]*factor, e.cfg.MinWorkforce)
	}

	return steps, nil
}

// regressionMatrix builds X[g][l] = amount / max(productivity, floor) / demand[g].
func (e *Economy) regressionMatrix() (*matrix.Dense[float32], error) {
	x, err := matrix.NewDense[float32](NumGoods, NumLabors)
	if err != nil {
		return nil, err
	}
	for _, labor := range Labors {
		prod := max(e.productivity[labor].Value, e.cfg.MinProductivity)
		for _, out := range labor.Industry().Outputs {
			v := out.Amount / prod / max(e.demand[out.Good], minDenominator)
			if err = x.Set(int(out.Good), int(labor), v); err != nil {
				return nil, err
			}
		}
	}

	return x, nil
}

// inverseGap returns ‖flowinv(N) − (NᵀN+βI)⁻¹Nᵀ‖² for the net coefficients N,
// or NaN when the exact operator is unavailable.
func (e *Economy) inverseGap() float32 {
	net, err := NetCoefficients()
	if err != nil {
		e.logger.Warn("net coefficients failed", zap.Error(err))
		return float32(math.NaN())
	}
	approx, err := flowinv.Invert(net, e.cfg.ApproxDepth)
	if err != nil {
		e.logger.Warn("approximate inverse failed", zap.Error(err))
		return float32(math.NaN())
	}
	exact, err := lsq.PseudoInverse(net, float32(max(e.cfg.Damping, DefaultDamping)))
	if err != nil {
		e.logger.Warn("exact inverse failed", zap.Error(err))
		return float32(math.NaN())
	}
	gap, err := flowinv.Gap(approx, exact)
	if err != nil {
		e.logger.Warn("inverse gap failed", zap.Error(err))
		return float32(math.NaN())
	}
	e.logger.Debug("approximate inverse", zap.Int("depth", e.cfg.ApproxDepth), zap.Float32("gap", gap))

	return gap
}

// NetCoefficients returns the goods×labors matrix of per-laborer flows:
// outputs positive, inputs negative.
func NetCoefficients() (*matrix.Dense[float32], error) {
	var net [NumGoods][NumLabors]float32
	for _, labor := range Labors {
		industry := labor.Industry()
		for _, out := range industry.Outputs {
			net[out.Good][labor] += out.Amount
		}
		for _, in := range industry.Inputs {
			net[in.Good][labor] -= in.Amount
		}
	}

	return matrix.FromFunc(NumGoods, NumLabors, func(g, l int) float32 { return net[g][l] })
}
