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
	"errors"
	"math"
	"testing"
)

// rt constructs a real-valued term.
func rt(coef float64, exp int) Term[Real] {
	return NewTerm(Real(coef), exp)
}

func Test_TermCmp_01(t *testing.T) {
	if c := rt(3, 2).Cmp(rt(100, 2)); c != 0 {
		t.Errorf("comparison ignores coefficients, got %d", c)
	}
	//
	if c := rt(1, 1).Cmp(rt(1, 2)); c >= 0 {
		t.Errorf("expected negative comparison, got %d", c)
	}
	//
	if c := rt(1, 3).Cmp(rt(1, 2)); c <= 0 {
		t.Errorf("expected positive comparison, got %d", c)
	}
}

func Test_TermMatches_01(t *testing.T) {
	if !rt(3, 2).Matches(rt(-3, 2)) {
		t.Error("terms of equal exponent should match")
	}
	//
	if rt(3, 2).Matches(rt(3, 1)) {
		t.Error("terms of differing exponent should not match")
	}
	//
	if rt(3, 2).Equal(rt(-3, 2)) {
		t.Error("structural equality should consider the coefficient")
	}
}

func Test_TermAdd_01(t *testing.T) {
	sum, err := rt(3, 2).Add(rt(4, 2))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !sum.Equal(rt(7, 2)) {
		t.Errorf("expected 7x^2, got %s", sum)
	}
}

func Test_TermAdd_02(t *testing.T) {
	_, err := rt(3, 2).Add(rt(4, 1))
	//
	if !errors.Is(err, ErrExponentMismatch) {
		t.Errorf("expected exponent mismatch, got %v", err)
	}
}

func Test_TermAdd_03(t *testing.T) {
	// Exact cancellation yields the canonical zero term (0, 0).
	sum, err := rt(3, 2).Add(rt(-3, 2))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !sum.IsZero() || sum.Exponent() != 0 {
		t.Errorf("expected canonical zero term, got %s", sum)
	}
}

func Test_TermSub_01(t *testing.T) {
	diff, err := rt(3, 2).Sub(rt(1, 2))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !diff.Equal(rt(2, 2)) {
		t.Errorf("expected 2x^2, got %s", diff)
	}
}

func Test_TermSub_02(t *testing.T) {
	_, err := rt(3, 2).Sub(rt(3, 1))
	//
	if !errors.Is(err, ErrExponentMismatch) {
		t.Errorf("expected exponent mismatch, got %v", err)
	}
}

func Test_TermEval_01(t *testing.T) {
	checkTermEval(t, rt(3, 2), 2, 12)
	checkTermEval(t, rt(3, 2), 0, 0)
	checkTermEval(t, rt(5, 0), 7, 5)
	checkTermEval(t, rt(1, 10), 2, 1024)
}

func Test_TermEval_02(t *testing.T) {
	// Negative exponents go through the multiplicative inverse.
	checkTermEval(t, rt(2, -1), 4, 0.5)
	checkTermEval(t, rt(1, -2), 2, 0.25)
}

func Test_TermNeg_01(t *testing.T) {
	if !rt(3, 2).Neg().Equal(rt(-3, 2)) {
		t.Error("negation should flip the coefficient only")
	}
}

func Test_TermSetters_01(t *testing.T) {
	term := rt(3, 2)
	term.SetCoefficient(Real(4))
	term.SetExponent(5)
	//
	if !term.Equal(rt(4, 5)) {
		t.Errorf("expected 4x^5, got %s", term)
	}
}

func Test_Pow_01(t *testing.T) {
	if v := Pow(Real(2), 10); v != 1024 {
		t.Errorf("expected 1024, got %s", v)
	}
	//
	if v := Pow(Real(2), 0); !v.IsOne() {
		t.Errorf("expected 1, got %s", v)
	}
	//
	if v := Pow(Real(2), -2); v != 0.25 {
		t.Errorf("expected 0.25, got %s", v)
	}
}

func checkTermEval(t *testing.T, term Term[Real], x float64, expected float64) {
	actual := term.Eval(Real(x))
	//
	if math.Abs(float64(actual)-expected) > 1e-9 {
		t.Errorf("incorrect evaluation of %s at %g (was %s, expected %g)", term, x, actual, expected)
	}
}
