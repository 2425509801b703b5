// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

import (
	"cmp"
	"fmt"
	"strconv"
)

// Real is the floating-point coefficient, and the primary instantiation of
// the polynomial containers.
type Real float64

// Add x + y
func (x Real) Add(y Real) Real {
	return x + y
}

// Mul x * y
func (x Real) Mul(y Real) Real {
	return x * y
}

// Neg returns -x
func (x Real) Neg() Real {
	return -x
}

// Inverse computes x⁻¹, or 0 if x = 0.
func (x Real) Inverse() Real {
	if x == 0 {
		return 0
	}
	//
	return 1 / x
}

// IsZero implementation for the Coefficient interface
func (x Real) IsZero() bool {
	return x == 0
}

// IsOne implementation for the Coefficient interface
func (x Real) IsOne() bool {
	return x == 1
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Real) Cmp(y Real) int {
	return cmp.Compare(float64(x), float64(y))
}

// SetUint64 constructs a coefficient from a given uint64.
func (x Real) SetUint64(val uint64) Real {
	return Real(val)
}

// Format renders this coefficient to the given number of significant digits,
// right justified in a field of the given width.
func (x Real) Format(precision uint, width uint) string {
	str := strconv.FormatFloat(float64(x), 'g', int(precision), 64)
	//
	return fmt.Sprintf("%*s", int(width), str)
}

// String implementation for the Stringer interface
func (x Real) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}
