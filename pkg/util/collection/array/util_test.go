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
package array

import (
	"slices"
	"testing"
)

type cint int

func (x cint) Cmp(y cint) int {
	return int(x) - int(y)
}

func Test_InsertAt_01(t *testing.T) {
	items := InsertAt([]cint{1, 3}, 2, 1)
	//
	if !slices.Equal(items, []cint{1, 2, 3}) {
		t.Errorf("incorrect insertion: %v", items)
	}
}

func Test_InsertAt_02(t *testing.T) {
	// Index beyond the end appends.
	items := InsertAt([]cint{1, 2}, 3, 5)
	//
	if !slices.Equal(items, []cint{1, 2, 3}) {
		t.Errorf("incorrect insertion: %v", items)
	}
}

func Test_InsertAt_03(t *testing.T) {
	items := InsertAt([]cint{}, 1, 0)
	//
	if !slices.Equal(items, []cint{1}) {
		t.Errorf("incorrect insertion: %v", items)
	}
}

func Test_RemoveAt_01(t *testing.T) {
	items := RemoveAt([]cint{1, 2, 3}, 1)
	//
	if !slices.Equal(items, []cint{1, 3}) {
		t.Errorf("incorrect removal: %v", items)
	}
}

func Test_RemoveAt_02(t *testing.T) {
	// Out-of-bounds removal is a no-op.
	items := RemoveAt([]cint{1, 2}, 5)
	//
	if !slices.Equal(items, []cint{1, 2}) {
		t.Errorf("incorrect removal: %v", items)
	}
}

func Test_IsSorted_01(t *testing.T) {
	if !IsSorted([]cint{1, 2, 2, 3}) {
		t.Error("expected sorted")
	}
	//
	if IsSorted([]cint{2, 1}) {
		t.Error("expected unsorted")
	}
}

func Test_IsStrictlySorted_01(t *testing.T) {
	if !IsStrictlySorted([]cint{1, 2, 3}) {
		t.Error("expected strictly sorted")
	}
	//
	if IsStrictlySorted([]cint{1, 2, 2}) {
		t.Error("duplicates are not strictly sorted")
	}
}
