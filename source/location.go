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
	"cmp"
	"fmt"
	"unicode/utf8"
)

// Location is a single addressable position within a [Source].
//
// It is a cheap immutable value holding a non-owning reference to its
// Source, which must outlive it. The end-of-text position is addressable
// but holds no character.
//
// Locations are ordered by offset, and only between locations of the same
// Source; comparing across sources is a programming error reported by
// [Location.Compare].
type Location struct {
	src    *Source
	offset int
	lc     LineCol
}

// NewLocation constructs a Location at the given byte offset.
//
// The line-column coordinate is resolved eagerly; since the Source is
// immutable, it remains consistent for the life of the value. Returns
// [ErrOffset] if offset is outside [0, len(text)].
func NewLocation(src *Source, offset int) (Location, error) {
	lc, err := src.metrics.LineCol(offset)
	if err != nil {
		return Location{}, err
	}
	return Location{src: src, offset: offset, lc: lc}, nil
}

// Source returns the source this location addresses into.
func (l Location) Source() *Source {
	return l.src
}

// Offset returns the byte offset of this location within its source.
func (l Location) Offset() int {
	return l.offset
}

// LineCol returns the 1-based line-column coordinate of this location.
func (l Location) LineCol() LineCol {
	return l.lc
}

// Rune returns the character at this location. Returns [ErrOffset] for
// the end-of-text location, which holds no character.
func (l Location) Rune() (rune, error) {
	if l.IsEnd() {
		return 0, fmt.Errorf("%w: no character at end of source", ErrOffset)
	}
	r, _ := utf8.DecodeRuneInString(l.src.text[l.offset:])
	return r, nil
}

// IsNewline reports whether this location addresses a newline character.
func (l Location) IsNewline() bool {
	return l.offset < len(l.src.text) && l.src.text[l.offset] == '\n'
}

// IsEnd reports whether this location addresses the end of its source.
func (l Location) IsEnd() bool {
	return l.offset == len(l.src.text)
}

// Equal reports whether two locations address the same offset of the same
// [Source]. Locations of distinct sources are never equal, even if the
// sources have equal content.
func (l Location) Equal(rhs Location) bool {
	return l.src == rhs.src && l.offset == rhs.offset
}

// Compare orders two locations of the same Source by offset. Returns
// [ErrSourceMismatch] if rhs belongs to a different Source; there is no
// total order across sources.
func (l Location) Compare(rhs Location) (int, error) {
	if l.src != rhs.src {
		return 0, fmt.Errorf("%w: %q and %q", ErrSourceMismatch, l.src.name, rhs.src.name)
	}
	return cmp.Compare(l.offset, rhs.offset), nil
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	return fmt.Sprintf("%s %v", l.src.name, l.lc)
}
