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

package report

import (
	"bytes"
	"io"
	"strings"
	"unicode"
)

// writer implements low-level writing helpers for the [Printer],
// including a line-buffering routine that keeps trailing whitespace out
// of the output. It captures the first write error and short-circuits
// subsequent writes, so rendering code never checks errors inline.
type writer struct {
	out io.Writer
	buf []byte // Never contains a '\n' byte.
	err error
}

// Write implements [io.Writer] so that rendering code can use the fmt
// package directly. The error is always nil; real write errors surface
// from [writer.Flush].
func (w *writer) Write(data []byte) (int, error) {
	w.WriteString(string(data))
	return len(data), nil
}

// WriteString appends data to the current line, flushing a line to the
// output at each newline in data.
func (w *writer) WriteString(data string) {
	for {
		line, rest, found := strings.Cut(data, "\n")
		w.buf = append(w.buf, line...)
		if !found {
			return
		}
		w.flush(true)
		data = rest
	}
}

// WriteSpaces appends n spaces to the current line.
func (w *writer) WriteSpaces(n int) {
	const spaces = "                                        "
	for n > len(spaces) {
		w.buf = append(w.buf, spaces...)
		n -= len(spaces)
	}
	w.buf = append(w.buf, spaces[:n]...)
}

// Flush writes any buffered line to the output and returns the first
// error encountered over the writer's life.
func (w *writer) Flush() error {
	w.flush(false)
	return w.err
}

// flush writes the buffered line, minus trailing whitespace, plus a
// newline if requested.
func (w *writer) flush(withNewline bool) {
	if w.err != nil {
		w.buf = w.buf[:0]
		return
	}

	line := bytes.TrimRightFunc(w.buf, unicode.IsSpace)
	if withNewline {
		line = append(line, '\n')
	}
	_, w.err = w.out.Write(line)
	w.buf = w.buf[:0]
}
