// SPDX-License-Identifier: MIT

// Package matrix: element constraint shared by every kernel.
package matrix

// Float is the element constraint for Dense. The solver runs on float32;
// float64 is accepted for reference computations and tests.
type Float interface {
	~float32 | ~float64
}
