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
	"strings"
)

// LineEnding is the newline convention of a [Source]'s original text.
//
// A Source normalizes its text to bare '\n' separators on construction,
// regardless of convention; LineEnding only records which convention the
// input used.
type LineEnding int8

const (
	// LF is the Unix convention: lines end with a bare '\n'. This is the
	// default for [NewSource].
	LF LineEnding = iota
	// CRLF is the Windows convention: lines end with "\r\n".
	CRLF
	// Detect adopts the convention of the first newline sequence found in
	// the text. Construction fails with [ErrLineEndingDetection] if the
	// text contains no newline at all, since the convention would be
	// ambiguous.
	Detect
)

// String implements [fmt.Stringer].
func (le LineEnding) String() string {
	switch le {
	case LF:
		return "lf"
	case CRLF:
		return "crlf"
	case Detect:
		return "detect"
	default:
		return fmt.Sprintf("LineEnding(%d)", int8(le))
	}
}

// Separator returns the literal line separator for this convention.
//
// [Detect] has no separator of its own and returns "".
func (le LineEnding) Separator() string {
	switch le {
	case LF:
		return "\n"
	case CRLF:
		return "\r\n"
	default:
		return ""
	}
}

// detectLineEnding examines text for its first newline and reports the
// convention it follows.
func detectLineEnding(text string) (LineEnding, bool) {
	i := strings.IndexByte(text, '\n')
	if i < 0 {
		return Detect, false
	}
	if i > 0 && text[i-1] == '\r' {
		return CRLF, true
	}
	return LF, true
}

// normalizeLineEndings rewrites text so that every line separator is a
// bare '\n', resolving [Detect] to the convention actually present.
//
// Normalizing text that is already LF is a no-op.
func normalizeLineEndings(text string, le LineEnding) (string, LineEnding, error) {
	if le == Detect {
		detected, ok := detectLineEnding(text)
		if !ok {
			return "", 0, fmt.Errorf("%w: text contains no newline", ErrLineEndingDetection)
		}
		le = detected
	}

	if le == CRLF {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	return text, le, nil
}
