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

import "testing"

func Test_Element_01(t *testing.T) {
	if v := New(2).Add(New(3)); v.Cmp(New(5)) != 0 {
		t.Errorf("expected 5, got %s", v)
	}
	//
	if v := New(2).Mul(New(3)); v.Cmp(New(6)) != 0 {
		t.Errorf("expected 6, got %s", v)
	}
}

func Test_Element_02(t *testing.T) {
	// x + (-x) = 0
	if v := New(7).Add(New(7).Neg()); !v.IsZero() {
		t.Errorf("expected 0, got %s", v)
	}
}

func Test_Element_03(t *testing.T) {
	// x * x⁻¹ = 1
	if v := New(7).Mul(New(7).Inverse()); !v.IsOne() {
		t.Errorf("expected 1, got %s", v)
	}
	// 0⁻¹ = 0
	if v := New(0).Inverse(); !v.IsZero() {
		t.Errorf("expected 0, got %s", v)
	}
}

func Test_Element_04(t *testing.T) {
	var zero Element
	//
	if !zero.IsZero() {
		t.Error("zero value should represent zero")
	}
	//
	if v := zero.SetUint64(1); !v.IsOne() {
		t.Errorf("expected 1, got %s", v)
	}
}

func Test_Element_05(t *testing.T) {
	if s := New(5).Format(2, 6); s != "     5" {
		t.Errorf("incorrect format (was %q, expected %q)", s, "     5")
	}
}
