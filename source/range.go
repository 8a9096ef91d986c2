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

package source

import (
	"fmt"
	"iter"
	"strings"
)

// Range is a half-open span [begin, end) of positions within one
// [Source].
//
// Like [Location], it is a cheap immutable value borrowing its Source.
// Derived views such as [Range.FullLines], [Range.Intersect] and
// [Range.Lines] produce new values and never mutate.
type Range struct {
	src        *Source
	begin, end int
}

// NewRange constructs the range [begin, end) over src.
//
// Returns [ErrRange] unless 0 <= begin <= end <= len(text).
func NewRange(src *Source, begin, end int) (Range, error) {
	if begin < 0 || end > len(src.text) || begin > end {
		return Range{}, fmt.Errorf("%w: [%d, %d) not within [0, %d]", ErrRange, begin, end, len(src.text))
	}
	return Range{src: src, begin: begin, end: end}, nil
}

// Source returns the source this range spans into.
func (r Range) Source() *Source {
	return r.src
}

// Offsets returns the begin and end byte offsets of this range.
func (r Range) Offsets() (begin, end int) {
	return r.begin, r.end
}

// Locations returns the begin and end offsets as [Location] values.
func (r Range) Locations() (begin, end Location) {
	begin, _ = NewLocation(r.src, r.begin)
	end, _ = NewLocation(r.src, r.end)
	return begin, end
}

// Len returns the number of bytes this range spans.
func (r Range) Len() int {
	return r.end - r.begin
}

// IsEmpty reports whether this range contains no locations.
func (r Range) IsEmpty() bool {
	return r.begin == r.end
}

// Text returns the characters this range designates.
func (r Range) Text() string {
	return r.src.text[r.begin:r.end]
}

// Contains reports whether l lies within this range, that is,
// begin <= l.Offset() < end. A location of a different Source is never
// contained.
func (r Range) Contains(l Location) bool {
	return l.src == r.src && r.ContainsOffset(l.offset)
}

// ContainsOffset reports whether begin <= offset < end.
func (r Range) ContainsOffset(offset int) bool {
	return offset >= r.begin && offset < r.end
}

// Equal reports whether two ranges have the same Source and the same
// endpoints.
func (r Range) Equal(rhs Range) bool {
	return r.src == rhs.src && r.begin == rhs.begin && r.end == rhs.end
}

// StrictlyNested reports whether r nests inside rhs sharing exactly one
// edge: either the begins are flush and r ends strictly inside rhs, or
// the ends are flush and r begins strictly inside rhs.
//
// This is a deliberately narrow relation, not a general interval order.
// Two disjoint ranges, equal ranges, and a range strictly inside another
// without a shared edge are all simply not strictly nested; do not use
// this as a sorting comparator.
func (r Range) StrictlyNested(rhs Range) bool {
	if r.src != rhs.src {
		return false
	}
	return (r.begin == rhs.begin && r.end < rhs.end) ||
		(r.end == rhs.end && r.begin > rhs.begin)
}

// Intersect returns the overlap [max(begins), min(ends)) of two ranges,
// if any location of one lies within the other. Ranges that are disjoint
// or merely touch have no intersection, reported by ok == false rather
// than an error. The operation is symmetric.
func (r Range) Intersect(rhs Range) (overlap Range, ok bool) {
	if r.src != rhs.src {
		return Range{}, false
	}
	begin := max(r.begin, rhs.begin)
	end := min(r.end, rhs.end)
	if begin >= end {
		return Range{}, false
	}
	return Range{src: r.src, begin: begin, end: end}, true
}

// Index returns the location at offset begin+i. Returns [ErrIndex]
// unless 0 <= i < Len().
func (r Range) Index(i int) (Location, error) {
	if i < 0 || i >= r.Len() {
		return Location{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, i, r.Len())
	}
	return NewLocation(r.src, r.begin+i)
}

// Slice returns the sub-range [begin+i, begin+j). Returns [ErrSlice]
// unless 0 <= i <= j <= Len().
func (r Range) Slice(i, j int) (Range, error) {
	if i < 0 || j > r.Len() || i > j {
		return Range{}, fmt.Errorf("%w: [%d, %d) of a range of length %d", ErrSlice, i, j, r.Len())
	}
	return Range{src: r.src, begin: r.begin + i, end: r.begin + j}, nil
}

// FullLines extends this range outward to the start of its first line and
// the end of its last: begin snaps back to just past the previous newline
// (or the start of text), end snaps forward to the next newline at or
// after it (or the end of text).
//
// The result is always a superset of r spanning a whole number of
// physical lines, and the operation is idempotent.
func (r Range) FullLines() Range {
	text := r.src.text
	begin := strings.LastIndexByte(text[:r.begin], '\n') + 1
	end := r.end
	if i := strings.IndexByte(text[end:], '\n'); i >= 0 {
		end += i
	} else {
		end = len(text)
	}
	return Range{src: r.src, begin: begin, end: end}
}

// Lines returns a fresh, finite sequence over the physical lines this
// range touches, in order. The first and last [Line] may be partial if
// the range does not begin or end at a line boundary. Terminating
// newlines are consumed but never included in a yielded Line.
//
// Each call produces an independent sequence; a sequence is not resumable
// once abandoned mid-iteration.
func (r Range) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if r.IsEmpty() {
			return
		}
		lc, _ := r.src.metrics.LineCol(r.begin)
		number := lc.Line

		text := r.src.text
		begin := r.begin
		for begin < r.end {
			end := r.end
			if i := strings.IndexByte(text[begin:r.end], '\n'); i >= 0 {
				end = begin + i
			}
			if !yield(Line{Range: Range{src: r.src, begin: begin, end: end}, number: number}) {
				return
			}
			begin = end + 1 // step over the newline
			number++
		}
	}
}

// LineNumbers returns the inclusive span of physical line numbers this
// range touches. An empty range reports the line of its begin offset for
// both.
func (r Range) LineNumbers() (first, last int) {
	begin, _ := r.src.metrics.LineCol(r.begin)
	endOffset := max(r.begin, r.end-1)
	end, _ := r.src.metrics.LineCol(endOffset)
	return begin.Line, end.Line
}

// String renders the range as "name line:col-line:col".
func (r Range) String() string {
	begin, _ := r.src.metrics.LineCol(r.begin)
	end, _ := r.src.metrics.LineCol(r.end)
	return fmt.Sprintf("%s %v-%v", r.src.name, begin, end)
}

// Line is a [Range] that spans (part of) exactly one physical source
// line, as yielded by [Range.Lines].
type Line struct {
	Range
	number int
}

// Number returns the 1-based physical line number of this line.
func (l Line) Number() int {
	return l.number
}
