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

	"github.com/Aphrosmeteorite/algorithm-road/pkg/util/collection/array"
)

// Default formatting parameters for Print.
const (
	// DefaultPrecision is the number of significant digits used when no
	// precision is given.
	DefaultPrecision uint = 2
	// DefaultWidth is the coefficient field width used when no width is given.
	DefaultWidth uint = 6
)

// Polynomial is an ordered, variable-length sequence of terms which, at all
// observable times, is sorted in ascending exponent order.  Aside from
// construction (which sorts, but deliberately does not merge, the terms it is
// given), no two terms ever share an exponent, and a term whose coefficient
// cancels to exactly zero is dropped rather than retained.  An uninitialised
// Polynomial corresponds with zero.
type Polynomial[C Coefficient[C]] struct {
	terms []Term[C]
}

// New constructs a polynomial from zero or more terms.  The terms are copied
// and sorted into ascending exponent order, and exact zeros are dropped.
// Duplicate exponents supplied here are preserved as separate entries; use
// Insert when merging semantics are required.
func New[C Coefficient[C]](terms ...Term[C]) Polynomial[C] {
	nterms := make([]Term[C], 0, len(terms))
	// Drop exact zeros
	for _, t := range terms {
		if !t.IsZero() {
			nterms = append(nterms, t)
		}
	}
	//
	sortTerms(nterms)
	//
	return Polynomial[C]{nterms}
}

// Len returns the number of terms in this polynomial.
func (p Polynomial[C]) Len() uint {
	return uint(len(p.terms))
}

// IsEmpty checks whether or not this polynomial has any terms at all.
func (p Polynomial[C]) IsEmpty() bool {
	return len(p.terms) == 0
}

// Term returns the ith term in this polynomial.
func (p Polynomial[C]) Term(ith uint) Term[C] {
	return p.terms[ith]
}

// Terms exposes the underlying term sequence, in ascending exponent order,
// for iteration or in-place coefficient updates.  Mutating exponents through
// this path risks violating the ordering and uniqueness invariants and is the
// caller's responsibility.
func (p Polynomial[C]) Terms() []Term[C] {
	return p.terms
}

// Clone performs a deep copy of this polynomial.
func (p Polynomial[C]) Clone() Polynomial[C] {
	return Polynomial[C]{slices.Clone(p.terms)}
}

// Insert a term into this polynomial, merging it with any existing term of
// the same exponent.  When the merged coefficient cancels to exactly zero the
// existing term is removed; otherwise the new term is placed so that
// ascending exponent order is preserved, including the case where its
// exponent exceeds all existing ones.
func (p *Polynomial[C]) Insert(term Term[C]) {
	if term.IsZero() {
		return
	}
	//
	for i := range p.terms {
		ith := &p.terms[i]
		//
		if ith.exponent == term.exponent {
			ith.coefficient = ith.coefficient.Add(term.coefficient)
			// Remove on exact cancellation
			if ith.coefficient.IsZero() {
				p.terms = array.RemoveAt(p.terms, uint(i))
			}
			//
			return
		} else if ith.exponent > term.exponent {
			p.terms = array.InsertAt(p.terms, term, uint(i))
			return
		}
	}
	// Largest exponent, append at end
	p.terms = append(p.terms, term)
}

// Add another polynomial onto this polynomial, producing a fresh polynomial
// without mutating either operand.  Both operands are assumed to be sorted in
// ascending exponent order already, hence this is a linear two-pointer merge
// which sums coefficients where exponents collide and drops exact zeros.
func (p Polynomial[C]) Add(other Polynomial[C]) Polynomial[C] {
	return Polynomial[C]{mergeTerms(p.terms, other.terms)}
}

// Sub subtracts another polynomial from this polynomial, defined as the
// addition of its negation.  Neither operand is mutated.
func (p Polynomial[C]) Sub(other Polynomial[C]) Polynomial[C] {
	return p.Add(other.Neg())
}

// Neg returns a copy of this polynomial with every coefficient negated.
func (p Polynomial[C]) Neg() Polynomial[C] {
	nterms := make([]Term[C], len(p.terms))
	//
	for i, t := range p.terms {
		nterms[i] = t.Neg()
	}
	//
	return Polynomial[C]{nterms}
}

// Eval sums the evaluation of every term at a given point.
func (p Polynomial[C]) Eval(x C) C {
	sum := Zero[C]()
	//
	for _, t := range p.terms {
		sum = sum.Add(t.Eval(x))
	}
	//
	return sum
}

// Equal checks whether two polynomials hold structurally identical term
// sequences.
func (p Polynomial[C]) Equal(other Polynomial[C]) bool {
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

// Format renders every term in ascending exponent order with the given
// significant digits and coefficient field width, each followed by a single
// space, with one trailing newline after the full sequence.
func (p Polynomial[C]) Format(precision uint, width uint) string {
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
func (p Polynomial[C]) Print(w io.Writer, precision uint, width uint) error {
	_, err := io.WriteString(w, p.Format(precision, width))
	//
	return err
}

// String implementation for the Stringer interface
func (p Polynomial[C]) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	//
	var buf bytes.Buffer
	//
	for i, t := range p.terms {
		if i != 0 {
			buf.WriteString(" + ")
		}
		//
		buf.WriteString(t.String())
	}
	//
	return buf.String()
}

// mergeTerms is the exponent-keyed merge underpinning addition for both
// polynomial variants.  Both inputs must already be sorted in ascending
// exponent order; the output then is as well, with equal exponents combined
// and exact cancellations dropped.
func mergeTerms[C Coefficient[C]](lhs []Term[C], rhs []Term[C]) []Term[C] {
	var (
		terms = make([]Term[C], 0, len(lhs)+len(rhs))
		i, j  int
	)
	//
	for i < len(lhs) && j < len(rhs) {
		l, r := lhs[i], rhs[j]
		//
		switch {
		case l.exponent < r.exponent:
			terms = append(terms, l)
			i++
		case l.exponent > r.exponent:
			terms = append(terms, r)
			j++
		default:
			if sum := l.add(r); !sum.IsZero() {
				terms = append(terms, sum)
			}
			//
			i++
			j++
		}
	}
	// Append whatever remains of either side
	terms = append(terms, lhs[i:]...)
	terms = append(terms, rhs[j:]...)
	//
	return terms
}

func sortTerms[C Coefficient[C]](terms []Term[C]) {
	slices.SortStableFunc(terms, func(a, b Term[C]) int {
		return a.Cmp(b)
	})
}
