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
	"slices"
	"unicode/utf8"
)

// LineCol is a 1-based line and column coordinate.
//
// Column counts runes since the most recent newline; a terminating
// newline occupies the final column of its line. Grapheme clusters and
// display width are not considered.
type LineCol struct {
	Line, Col int
}

// String implements [fmt.Stringer].
func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// Compare orders two coordinates lexicographically by line, then column.
func (lc LineCol) Compare(rhs LineCol) int {
	if lc.Line != rhs.Line {
		return cmp.Compare(lc.Line, rhs.Line)
	}
	return cmp.Compare(lc.Col, rhs.Col)
}

// A checkpoint is a sampled (offset, line, col) triple. It anchors the
// local scans in [Metrics.LineCol] and [Metrics.Offset].
type checkpoint struct {
	offset int
	lc     LineCol
}

const (
	// checkpointBudget bounds the number of checkpoints recorded,
	// regardless of text size.
	checkpointBudget = 1024
	// minStride keeps small texts from recording checkpoints that no
	// lookup would ever need.
	minStride = 64
)

// Metrics converts between byte offsets and line-column coordinates for
// one immutable text.
//
// Instead of a per-line offset table, Metrics keeps a sparse list of
// sampled checkpoints and scans forward rune-by-rune from the greatest
// checkpoint at or before the target. The stride is chosen from a fixed
// checkpoint budget, so memory stays bounded regardless of line count and
// every lookup does at most one stride of linear work.
//
// Checkpoints are strictly increasing in offset and in line-column order,
// and always land on rune boundaries.
type Metrics struct {
	text        string
	checkpoints []checkpoint
	// colCounts[i] is the number of columns on 1-based line i+1. A line's
	// terminating newline counts as its final column; the last line (which
	// has none) counts only its runes, and is zero for the empty line that
	// follows a trailing newline.
	colCounts []int
}

// newMetrics walks text once, recording a checkpoint at the first rune
// boundary past each stride interval and the column count of every line.
func newMetrics(text string) *Metrics {
	m := &Metrics{text: text}
	stride := max(minStride, len(text)/checkpointBudget)

	lc := LineCol{Line: 1, Col: 1}
	next := 0
	for offset, r := range text {
		if offset >= next {
			m.checkpoints = append(m.checkpoints, checkpoint{offset: offset, lc: lc})
			next = offset + stride
		}
		if r == '\n' {
			m.colCounts = append(m.colCounts, lc.Col)
			lc.Line++
			lc.Col = 1
		} else {
			lc.Col++
		}
	}
	m.colCounts = append(m.colCounts, lc.Col-1)

	if len(m.checkpoints) == 0 {
		// Empty text still gets its anchor.
		m.checkpoints = append(m.checkpoints, checkpoint{lc: LineCol{Line: 1, Col: 1}})
	}
	return m
}

// LineCol returns the line-column coordinate of the given byte offset.
//
// The end-of-text offset is addressable: it maps to one column past the
// final column of the last line. Returns [ErrOffset] if offset is outside
// [0, len(text)].
func (m *Metrics) LineCol(offset int) (LineCol, error) {
	if !m.ValidOffset(offset) {
		return LineCol{}, fmt.Errorf("%w: %d not in [0, %d]", ErrOffset, offset, len(m.text))
	}

	i, exact := slices.BinarySearchFunc(m.checkpoints, offset, func(c checkpoint, offset int) int {
		return cmp.Compare(c.offset, offset)
	})
	if exact {
		return m.checkpoints[i].lc, nil
	}

	c := m.checkpoints[i-1]
	lc := c.lc
	for p := c.offset; p < offset; {
		r, size := utf8.DecodeRuneInString(m.text[p:])
		if p+size > offset {
			// offset splits a rune; report the rune's own coordinate.
			break
		}
		if r == '\n' {
			lc.Line++
			lc.Col = 1
		} else {
			lc.Col++
		}
		p += size
	}
	return lc, nil
}

// Offset returns the byte offset of the given line-column coordinate.
//
// The end-of-text position, one column past the final column of the last
// line, maps to len(text). Returns [ErrLineCol] if lc names a nonexistent
// line or a column beyond that line's count.
func (m *Metrics) Offset(lc LineCol) (int, error) {
	if !m.ValidLineCol(lc) {
		return 0, fmt.Errorf("%w: %v", ErrLineCol, lc)
	}

	i, exact := slices.BinarySearchFunc(m.checkpoints, lc, func(c checkpoint, lc LineCol) int {
		return c.lc.Compare(lc)
	})
	if exact {
		return m.checkpoints[i].offset, nil
	}

	c := m.checkpoints[i-1]
	cur := c.lc
	p := c.offset
	for cur != lc {
		r, size := utf8.DecodeRuneInString(m.text[p:])
		if r == '\n' {
			cur.Line++
			cur.Col = 1
		} else {
			cur.Col++
		}
		p += size
	}
	return p, nil
}

// ValidOffset reports whether offset is within [0, len(text)]. The
// end-of-text offset is valid even though it holds no character.
func (m *Metrics) ValidOffset(offset int) bool {
	return offset >= 0 && offset <= len(m.text)
}

// ValidLine reports whether line names a physical line of the text.
func (m *Metrics) ValidLine(line int) bool {
	return line >= 1 && line <= len(m.colCounts)
}

// ValidLineCol reports whether lc names an addressable position: a column
// on an existing line, or one column past the end of the last line (the
// end-of-text position).
func (m *Metrics) ValidLineCol(lc LineCol) bool {
	if !m.ValidLine(lc.Line) || lc.Col < 1 {
		return false
	}
	count := m.colCounts[lc.Line-1]
	if lc.Line == len(m.colCounts) {
		count++
	}
	return lc.Col <= count
}

// LineCount returns the number of physical lines. Text ending in a
// newline has a final empty line after it; empty text has one line.
func (m *Metrics) LineCount() int {
	return len(m.colCounts)
}

// ColumnCount returns the number of columns on the given line, counting a
// terminating newline as the line's final column. Returns [ErrLineCol]
// for a nonexistent line.
func (m *Metrics) ColumnCount(line int) (int, error) {
	if !m.ValidLine(line) {
		return 0, fmt.Errorf("%w: no line %d", ErrLineCol, line)
	}
	return m.colCounts[line-1], nil
}

// LineStart returns the offset of the first column of the given line.
func (m *Metrics) LineStart(line int) (int, error) {
	return m.Offset(LineCol{Line: line, Col: 1})
}

// LineEnd returns the offset of the final column of the given line: its
// terminating newline, or its last character for the final line. For an
// empty line, this is the same as [Metrics.LineStart].
func (m *Metrics) LineEnd(line int) (int, error) {
	count, err := m.ColumnCount(line)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return m.Offset(LineCol{Line: line, Col: 1})
	}
	return m.Offset(LineCol{Line: line, Col: count})
}
