// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box): exposes the effective Options to matrix_test
// without widening the production API. Keep OptionsSnapshot in sync with
// Options; the defaults test catches drift.

// OptionsSnapshot is a read-only copy of the internal Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	PivotTol       float64
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf, PivotTol: o.pivotTol}
}

// DefaultOptionsSnapshot_TestOnly returns the documented defaults.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// ValidatesNaNInf_TestOnly reports the numeric policy carried by m.
func ValidatesNaNInf_TestOnly[T Float](m *Dense[T]) bool { return m.validateNaNInf }
