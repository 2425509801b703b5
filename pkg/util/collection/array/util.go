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

import "github.com/Aphrosmeteorite/algorithm-road/pkg/util"

// InsertAt inserts a given element into an array at a given index, such that
// all elements from that index onwards are shifted one place to the right.
// An index beyond the end of the array results in a simple append.
func InsertAt[T any](items []T, element T, index uint) []T {
	n := uint(len(items))
	//
	if index < n {
		first := items[:index]
		second := items[index:]
		items = make([]T, n+1)
		copy(items, first)
		copy(items[index+1:], second)
		items[index] = element
	} else {
		items = append(items, element)
	}
	//
	return items
}

// RemoveAt removes the element at a given index from an array, such that all
// elements from that index onwards are shifted one place to the left.
func RemoveAt[T any](items []T, index uint) []T {
	n := uint(len(items))
	//
	if index < n {
		first := items[0:index]
		second := items[index+1:]
		items = append(first, second...)
	}
	//
	return items
}

// IsSorted checks whether an array of comparable elements is sorted in
// ascending order (allowing duplicates).
func IsSorted[T util.Comparable[T]](items []T) bool {
	for i := 1; i < len(items); i++ {
		if items[i-1].Cmp(items[i]) > 0 {
			return false
		}
	}
	//
	return true
}

// IsStrictlySorted checks whether an array of comparable elements is sorted
// in strictly ascending order (i.e. without duplicates).
func IsStrictlySorted[T util.Comparable[T]](items []T) bool {
	for i := 1; i < len(items); i++ {
		if items[i-1].Cmp(items[i]) >= 0 {
			return false
		}
	}
	//
	return true
}
