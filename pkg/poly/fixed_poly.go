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
	"bytes"
	"io"
	"slices"
)

// FixedPoly is the fixed-size polynomial variant.  Its term count is fixed at
// construction time and no insertion operation is exposed; only indexed
// access, addition, subtraction, evaluation and printing.  The backing store
// is allocated exactly once, which makes this variant suitable where the term
// count is known up front and allocation churn matters.
type FixedPoly[C Coefficient[C]] struct {
	terms []Term[C]
}

// NewFixed constructs a fixed-size polynomial from zero or more terms.  As
// with New, the terms are copied and sorted into ascending exponent order,
// exact zeros are dropped, and duplicate exponents are preserved as given.
func NewFixed[C Coefficient[C]](terms ...Term[C]) FixedPoly[C] {
	nterms := make([]Term[C], 0, len(terms))
	//
	for _, t := range terms {
		if !t.IsZero() {
			nterms = append(nterms, t)
		}
	}
	//
	sortTerms(nterms)
	//
	return FixedPoly[C]{nterms}
}

// Len returns the number of terms in this polynomial.
func (p FixedPoly[C]) Len() uint {
	return uint(len(p.terms))
}

// IsEmpty checks whether or not this polynomial has any terms at all.
func (p FixedPoly[C]) IsEmpty() bool {
	return len(p.terms) == 0
}

// Term returns the ith term in this polynomial.
func (p FixedPoly[C]) Term(ith uint) Term[C] {
	return p.terms[ith]
}

// SetTerm overwrites the ith term in this polynomial.  The caller is
// responsible for keeping the sequence sorted and exponent-unique.
func (p FixedPoly[C]) SetTerm(ith uint, term Term[C]) {
	p.terms[ith] = term
}

// Clone performs a deep copy of this polynomial.
func (p FixedPoly[C]) Clone() FixedPoly[C] {
	return FixedPoly[C]{slices.Clone(p.terms)}
}

// Add another fixed-size polynomial onto this polynomial, producing a fresh
// polynomial sized exactly for the merged term sequence, using the same
// exponent-keyed merge as the dynamic variant.
func (p FixedPoly[C]) Add(other FixedPoly[C]) FixedPoly[C] {
	return FixedPoly[C]{mergeTerms(p.terms, other.terms)}
}

// Sub subtracts another fixed-size polynomial from this polynomial, defined
// as the addition of its negation.
func (p FixedPoly[C]) Sub(other FixedPoly[C]) FixedPoly[C] {
	return p.Add(other.Neg())
}

// Neg returns a copy of this polynomial with every coefficient negated.
func (p FixedPoly[C]) Neg() FixedPoly[C] {
	nterms := make([]Term[C], len(p.terms))
	//
	for i, t := range p.terms {
		nterms[i] = t.Neg()
	}
	//
	return FixedPoly[C]{nterms}
}

// Eval sums the evaluation of every term at a given point.
func (p FixedPoly[C]) Eval(x C) C {
	sum := Zero[C]()
	//
	for _, t := range p.terms {
		sum = sum.Add(t.Eval(x))
	}
	//
	return sum
}

// Equal checks whether two fixed-size polynomials hold structurally identical
// term sequences.
func (p FixedPoly[C]) Equal(other FixedPoly[C]) bool {
	if len(p.terms) != len(other.terms) {
		return false
	}
	//
	for i := range p.terms {
		if !p.terms[i].Equal(other.terms[i]) {
			return false
		}
	}
	//
	return true
}

// Format renders every term exactly as the dynamic variant does.
func (p FixedPoly[C]) Format(precision uint, width uint) string {
	var buf bytes.Buffer
	//
	for _, t := range p.terms {
		buf.WriteString(t.Format(precision, width))
		buf.WriteString(" ")
	}
	//
	buf.WriteString("\n")
	//
	return buf.String()
}

// Print writes the formatted term sequence to a given writer.
func (p FixedPoly[C]) Print(w io.Writer, precision uint, width uint) error {
	_, err := io.WriteString(w, p.Format(precision, width))
	//
	return err
}

// String implementation for the Stringer interface
func (p FixedPoly[C]) String() string {
	return Polynomial[C]{p.terms}.String()
}
