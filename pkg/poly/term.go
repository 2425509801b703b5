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
	"errors"
	"strconv"
)

// ErrExponentMismatch is reported when two terms of differing exponents are
// added or subtracted directly.  The polynomial-level operations never
// trigger this, since their merge only ever combines terms of equal exponent.
var ErrExponentMismatch = errors.New("exponent mismatch")

// Term represents a single monomial component, coefficient * x^exponent.
// Terms are value types owned by their enclosing polynomial.  Ordering
// between terms is keyed on the exponent alone, irrespective of the
// coefficient; use Equal for full structural equality.
type Term[C Coefficient[C]] struct {
	coefficient C
	exponent    int
}

// NewTerm constructs a new term with a given coefficient and exponent.
func NewTerm[C Coefficient[C]](coefficient C, exponent int) Term[C] {
	return Term[C]{coefficient, exponent}
}

// Coefficient returns the coefficient of this term.
func (t Term[C]) Coefficient() C {
	return t.coefficient
}

// Exponent returns the exponent of this term.
func (t Term[C]) Exponent() int {
	return t.exponent
}

// SetCoefficient updates the coefficient of this term.  The enclosing
// container is responsible for re-establishing its own invariants afterwards.
func (t *Term[C]) SetCoefficient(coefficient C) {
	t.coefficient = coefficient
}

// SetExponent updates the exponent of this term.  The enclosing container is
// responsible for re-establishing its own invariants afterwards.
func (t *Term[C]) SetExponent(exponent int) {
	t.exponent = exponent
}

// Cmp returns < 0 if this term is less than other, or 0 if they are equal, or
// > 0 if this term is greater than other.  Comparison is by exponent only,
// which makes the exponent a de-facto unique key within a polynomial.
func (t Term[C]) Cmp(other Term[C]) int {
	return cmp.Compare(t.exponent, other.exponent)
}

// Matches determines whether or not the exponent of this term matches that of
// the other.
func (t Term[C]) Matches(other Term[C]) bool {
	return t.exponent == other.exponent
}

// Equal performs structural equality between two terms.  That is, they are
// considered the same provided both exponent and coefficient agree.
func (t Term[C]) Equal(other Term[C]) bool {
	return t.exponent == other.exponent && t.coefficient.Cmp(other.coefficient) == 0
}

// IsZero checks whether or not the coefficient of this term is zero.
func (t Term[C]) IsZero() bool {
	return t.coefficient.IsZero()
}

// Neg returns a copy of this term with the coefficient negated.
func (t Term[C]) Neg() Term[C] {
	return Term[C]{t.coefficient.Neg(), t.exponent}
}

// Add this term to another of the same exponent, returning a fresh term with
// the summed coefficient.  When the sum cancels to exactly zero the canonical
// zero term (0, 0) is returned, hence callers must not rely on the exponent
// of a zero result.  Adding terms of differing exponents yields
// ErrExponentMismatch.
func (t Term[C]) Add(other Term[C]) (Term[C], error) {
	if t.exponent != other.exponent {
		return Term[C]{}, ErrExponentMismatch
	}
	//
	return t.add(other), nil
}

// Sub subtracts another term of the same exponent from this one, defined as
// the addition of its negation.
func (t Term[C]) Sub(other Term[C]) (Term[C], error) {
	return t.Add(other.Neg())
}

// Eval computes coefficient * x^exponent, with x^0 = 1 and negative
// exponents taken through the multiplicative inverse.
func (t Term[C]) Eval(x C) C {
	return t.coefficient.Mul(Pow(x, t.exponent))
}

// Format renders this term to the given number of significant digits, with
// the coefficient right justified in a field of the given width.
func (t Term[C]) Format(precision uint, width uint) string {
	return t.coefficient.Format(precision, width) + "x^" + strconv.Itoa(t.exponent)
}

// String implementation for the Stringer interface
func (t Term[C]) String() string {
	return t.coefficient.String() + "x^" + strconv.Itoa(t.exponent)
}

// add is the unchecked addition used by the polynomial merge, which only ever
// combines terms of equal exponent.
func (t Term[C]) add(other Term[C]) Term[C] {
	sum := t.coefficient.Add(other.coefficient)
	// Canonicalise exact cancellation
	if sum.IsZero() {
		return Term[C]{}
	}
	//
	return Term[C]{sum, t.exponent}
}
