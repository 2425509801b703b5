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
package bls12_377

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform to the poly.Coefficient interface,
// giving polynomials over the BLS12-377 scalar field.  Cancellation is exact
// here, which makes this the preferred instantiation when zero-elimination
// must not be subject to floating-point tolerance.
type Element struct {
	fr.Element
}

// New constructs a field element from a given uint64.
func New(val uint64) Element {
	var elem fr.Element
	//
	elem.SetUint64(val)
	//
	return Element{elem}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Neg returns -x
func (x Element) Neg() Element {
	var res fr.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Inverse computes x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res fr.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// IsZero implementation for the Coefficient interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the Coefficient interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// SetUint64 constructs a field element from a given uint64.
func (x Element) SetUint64(val uint64) Element {
	x.Element.SetUint64(val)
	//
	return x
}

// String implementation for the Stringer interface
func (x Element) String() string {
	return x.Element.String()
}

// Format renders this element right justified in a field of the given width.
// Field elements are exact integers, hence the precision is ignored.
func (x Element) Format(_ uint, width uint) string {
	return fmt.Sprintf("%*s", int(width), x.Element.String())
}

// Modulus returns the modulus of the BLS12-377 scalar field.
func Modulus() *big.Int {
	return fr.Modulus()
}
