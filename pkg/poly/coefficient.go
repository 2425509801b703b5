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

import "fmt"

// Coefficient captures the operations required of a term coefficient.
// Implementations are value types: every operation returns a fresh value and
// leaves its receiver untouched.  Observe that the zero value of an
// implementation must represent zero.
type Coefficient[C any] interface {
	fmt.Stringer
	// Add x + y
	Add(y C) C
	// Mul x * y
	Mul(y C) C
	// Neg returns -x
	Neg() C
	// Inverse computes x⁻¹, or 0 if x = 0.
	Inverse() C
	// IsZero checks whether this value is zero (or not).
	IsZero() bool
	// IsOne checks whether this value is one (or not).
	IsOne() bool
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y C) int
	// SetUint64 constructs a coefficient from a given uint64.
	SetUint64(uint64) C
	// Format renders this coefficient to the given number of significant
	// digits, right justified in a field of the given width.
	Format(precision uint, width uint) string
}

// Zero constructs a coefficient representing 0.
func Zero[C Coefficient[C]]() C {
	var coeff C
	//
	return coeff
}

// One constructs a coefficient representing 1.
func One[C Coefficient[C]]() C {
	var coeff C
	//
	return coeff.SetUint64(1)
}

// Pow raises a given base to a given power using binary exponentiation.
// Negative exponents are handled by inverting the base first, hence
// Pow(x, -n) = (x⁻¹)ⁿ.
func Pow[C Coefficient[C]](base C, exp int) C {
	if exp < 0 {
		base = base.Inverse()
		exp = -exp
	}
	//
	result := One[C]()
	//
	for {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base = base.Mul(base)
	}

	return result
}
