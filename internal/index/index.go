// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a generic sorted index over values keyed by
// their string form.
package index

import (
	"fmt"
	"slices"
	"sort"
)

// Index holds values sorted by key. The key of a value is its String().
type Index[V fmt.Stringer] struct {
	values []V
	cmp    func(string, string) int
}

// New returns an index of values ordered by cmp. cmp(a, b) should return a
// negative number when a < b, a positive number when a > b and zero when a
// and b are equal keys. The sort is stable so values with equal keys keep
// their relative order. values is not modified.
func New[V fmt.Stringer](values []V, cmp func(string, string) int) *Index[V] {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(a.String(), b.String())
	})
	return &Index[V]{
		values: sorted,
		cmp:    cmp,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}

// At returns the i-th value in key order.
func (idx *Index[V]) At(i int) V {
	return idx.values[i]
}

// Values returns all values in key order.
func (idx *Index[V]) Values() []V {
	return slices.Clone(idx.values)
}

// Position returns the position of the first value whose key equals key.
func (idx *Index[V]) Position(key string) (int, bool) {
	return sort.Find(len(idx.values), func(i int) int {
		return idx.cmp(key, idx.values[i].String())
	})
}

// Search returns the values whose key equals query.
func (idx *Index[V]) Search(query string) []V {
	i, found := idx.Position(query)
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.values) && idx.cmp(query, idx.values[j].String()) == 0 {
		j++
	}
	return idx.values[i:j]
}
