// Copyright 2020-2025 Buf Technologies, Inc.
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

// Package interval provides an ordered map from non-overlapping source
// ranges to values.
//
// Front-ends use it to attach semantic data to regions of a
// [source.Source]: symbol spans, scopes, folding regions, and so on. It
// is the consumer-facing companion of the positional model: build
// [source.Range] values while parsing, then index whatever they denote
// by position.
package interval

import (
	"iter"

	"github.com/tidwall/btree"

	"github.com/bufbuild/sourcetext/source"
)

// Interval is an entry of a [Map]: a half-open offset interval and the
// value associated with it.
//
// A nil Value marks the absence of an entry, such as a [Map.At] miss.
type Interval[V any] struct {
	// The half-open offset interval [Begin, End) this entry spans.
	Begin, End int

	// The value associated with it.
	Value *V
}

type entry[V any] struct {
	begin int
	value V
}

// Map associates values with non-overlapping half-open ranges of a
// single [source.Source]. A zero value is ready to use; the first
// insertion pins the map to that range's source.
//
// Lookup is O(log n) in the number of intervals.
type Map[V any] struct {
	src *source.Source
	// Keys in this tree are the exclusive ends of the intervals; since
	// intervals never overlap, ordering by end also orders by begin.
	tree btree.Map[int, *entry[V]]
}

// Source returns the source this map indexes into, or nil before the
// first insertion.
func (m *Map[V]) Source() *source.Source {
	return m.src
}

// Len returns the number of intervals in the map.
func (m *Map[V]) Len() int {
	return m.tree.Len()
}

// Insert associates value with r's span.
//
// If r overlaps an interval already present, nothing is inserted and the
// colliding interval is returned with ok == false. Empty ranges and
// ranges of a different source than the map's hold no indexable span and
// are likewise rejected, with a zero collision.
func (m *Map[V]) Insert(r source.Range, value V) (collision Interval[V], ok bool) {
	if r.IsEmpty() || (m.src != nil && r.Source() != m.src) {
		return Interval[V]{}, false
	}

	begin, end := r.Offsets()
	it := m.tree.Iter()
	// The least stored interval with end > begin is the only overlap
	// candidate: any later interval begins at or after that one's end.
	if it.Seek(begin+1) && it.Value().begin < end {
		return Interval[V]{
			Begin: it.Value().begin,
			End:   it.Key(),
			Value: &it.Value().value,
		}, false
	}

	m.src = r.Source()
	m.tree.Set(end, &entry[V]{begin: begin, value: value})
	return Interval[V]{}, true
}

// At looks up the interval containing the given location, if one exists.
// On a miss, the returned interval's Value is nil.
func (m *Map[V]) At(l source.Location) Interval[V] {
	if l.Source() != m.src {
		return Interval[V]{}
	}
	return m.AtOffset(l.Offset())
}

// AtOffset looks up the interval containing the given offset, if one
// exists. On a miss, the returned interval's Value is nil.
func (m *Map[V]) AtOffset(offset int) Interval[V] {
	it := m.tree.Iter()
	if !it.Seek(offset+1) || it.Value().begin > offset {
		return Interval[V]{}
	}
	return Interval[V]{
		Begin: it.Value().begin,
		End:   it.Key(),
		Value: &it.Value().value,
	}
}

// All returns an iterator over the intervals of this map, in offset
// order.
func (m *Map[V]) All() iter.Seq[Interval[V]] {
	return func(yield func(Interval[V]) bool) {
		it := m.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(Interval[V]{
				Begin: it.Value().begin,
				End:   it.Key(),
				Value: &it.Value().value,
			}) {
				return
			}
		}
	}
}
