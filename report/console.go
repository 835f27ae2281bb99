// SPDX-License-Identifier: MIT

// Package report renders economy snapshots for people: a plain-text console
// report per tick and a labor allocation chart over a run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlopt/economy"
)

// Console writes the per-tick report of snap to w.
func Console(w io.Writer, snap economy.Snapshot) error {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Tick %d ---\n", snap.Tick)
	fmt.Fprintf(&b, "Laborers: %s (%g%% lazy, pop = %g)\n",
		byLabor(snap.Laborers), snap.LazyPercent, snap.Population)
	fmt.Fprintf(&b, "Available: %s\n", byGood(snap.Available))
	fmt.Fprintf(&b, "Labor value: %s\n", byGood(snap.LaborValue))
	fmt.Fprintf(&b, "Price: %s\n", byGood(snap.Price))
	fmt.Fprintf(&b, "Demand: %s\n", byGood(snap.Demand))
	fmt.Fprintf(&b, "Productivity: %s\n", productivity(snap.Productivity))
	fmt.Fprintf(&b, "Total output: %s\n", byGood(snap.Output))
	if n := len(snap.Solver); n > 0 {
		last := snap.Solver[n-1]
		fmt.Fprintf(&b, "Solver: %d step(s), error %g -> %g, accepted %v\n", n, snap.Solver[0].Error0, last.Error1, last.Accepted)
	}
	fmt.Fprintf(&b, "Inverse gap: %g\n", snap.InverseGap)

	_, err := io.WriteString(w, b.String())

	return err
}

func byGood(v [economy.NumGoods]float32) string {
	parts := make([]string, 0, economy.NumGoods)
	for _, g := range economy.Goods {
		parts = append(parts, fmt.Sprintf("%s: %g", g, v[g]))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func byLabor(v [economy.NumLabors]float32) string {
	parts := make([]string, 0, economy.NumLabors)
	for _, l := range economy.Labors {
		parts = append(parts, fmt.Sprintf("%s: %g", l, v[l]))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func productivity(v [economy.NumLabors]economy.Productivity) string {
	parts := make([]string, 0, economy.NumLabors)
	for _, l := range economy.Labors {
		limit := "-"
		if v[l].HasLimit {
			limit = v[l].Limiting.String()
		}
		parts = append(parts, fmt.Sprintf("%s: (%g, %s)", l, v[l].Value, limit))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
