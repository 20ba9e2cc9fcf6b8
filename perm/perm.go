// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package perm enumerates the permutations of a small set of values.
package perm

// Count returns n!, the number of permutations of n distinct values.
func Count(n int) int {
	c := 1
	for ; n > 1; n-- {
		c *= n
	}
	return c
}

// Each calls fn with every permutation of values, until fn returns false.
// Every ordering is produced exactly once (values are compared by position,
// not by value). The slice passed to fn is reused between calls; fn must copy
// it if it needs to keep it. values itself is not modified.
//
// Permutations are generated with Heap's algorithm, the enumeration order is
// not specified.
func Each[T any](values []T, fn func([]T) bool) {
	a := make([]T, len(values))
	copy(a, values)
	c := make([]int, len(a))

	if !fn(a) {
		return
	}
	for i := 1; i < len(a); {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			if !fn(a) {
				return
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
}

// All returns all the permutations of values. Each permutation is a new
// slice.
func All[T any](values []T) [][]T {
	r := make([][]T, 0, Count(len(values)))
	Each(values, func(p []T) bool {
		r = append(r, append([]T(nil), p...))
		return true
	})
	return r
}
