// SPDX-License-Identifier: MIT

package economy

import "github.com/katalvlaran/lvlopt/lsq"

// Snapshot is the observable state after one Tick. Arrays are indexed by
// Good or Labor.
type Snapshot struct {
	Tick         int
	Population   float32
	Laborers     [NumLabors]float32
	LazyPercent  float32 // share of the population not allocated to any labor
	Available    [NumGoods]float32
	LaborValue   [NumGoods]float32
	Price        [NumGoods]float32
	Demand       [NumGoods]float32
	Output       [NumGoods]float32
	Productivity [NumLabors]Productivity

	Solver     []lsq.StepResult[float32] // one entry per executed solver step
	InverseGap float32                   // NaN when the diagnostic could not run
}

// TotalLaborers sums the allocation.
func (s Snapshot) TotalLaborers() float32 {
	var total float32
	for _, l := range s.Laborers {
		total += l
	}

	return total
}

func (e *Economy) snapshot(steps []lsq.StepResult[float32], gap float32) Snapshot {
	s := Snapshot{
		Tick:         e.tick,
		Population:   e.cfg.Population,
		Laborers:     e.laborers,
		Available:    e.available,
		LaborValue:   e.laborValue,
		Price:        e.price,
		Demand:       e.demand,
		Output:       e.output,
		Productivity: e.productivity,
		Solver:       steps,
		InverseGap:   gap,
	}
	s.LazyPercent = 100 * (s.Population - s.TotalLaborers()) / s.Population

	return s
}
