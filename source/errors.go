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

import "errors"

// Errors reported by this package. All of them are deterministic input
// validation failures: they are surfaced immediately at the point of
// construction or lookup, never deferred, and no partially constructed
// value escapes. Callers can classify them with [errors.Is].
var (
	// ErrLineEndingDetection indicates that [Detect] was requested but the
	// text contains no newline to infer a convention from.
	ErrLineEndingDetection = errors.New("sourcetext: cannot detect line ending")

	// ErrEncoding indicates that a byte buffer could not be decoded with
	// the declared encoding, or that the encoding name is unknown.
	ErrEncoding = errors.New("sourcetext: cannot decode source bytes")

	// ErrOffset indicates an offset outside [0, len(text)].
	ErrOffset = errors.New("sourcetext: offset out of range")

	// ErrRange indicates range endpoints with begin > end, or an endpoint
	// outside [0, len(text)].
	ErrRange = errors.New("sourcetext: invalid range")

	// ErrLineCol indicates a line-column pair naming a nonexistent line,
	// or a column beyond that line's column count.
	ErrLineCol = errors.New("sourcetext: invalid line-column")

	// ErrIndex indicates an out-of-bounds index into a [Range].
	ErrIndex = errors.New("sourcetext: index out of range")

	// ErrSlice indicates slice bounds that do not satisfy
	// 0 <= i <= j <= len.
	ErrSlice = errors.New("sourcetext: invalid slice bounds")

	// ErrSourceMismatch indicates that positions belonging to two distinct
	// [Source] values were compared. Positions are ordered only within a
	// single source.
	ErrSourceMismatch = errors.New("sourcetext: positions belong to different sources")
)
