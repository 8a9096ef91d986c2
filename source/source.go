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

// Package source models source text and positions within it.
//
// A [Source] owns one immutable, newline-normalized snapshot of text,
// together with a [Metrics] index that converts between byte offsets and
// line-column coordinates. [Location] and [Range] are lightweight values
// that address positions and half-open spans within a Source; they borrow
// the Source and must not outlive it.
//
// Because a Source never mutates after construction, it and every value
// derived from it may be shared freely across goroutines without locking.
package source

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// DefaultName is the name given to sources constructed without [WithName].
const DefaultName = "<none>"

// Source is a single logical unit of source text, such as the contents of
// one file.
//
// The text is normalized so that every line separator is a bare '\n'.
// Sources are immutable: every [Location] and [Range] derived from one
// remains valid for the life of the Source.
//
// Position values compare by Source identity (pointer equality). For
// hashing or deduplication by content, use [Source.Key].
type Source struct {
	name       string
	text       string
	lineEnding LineEnding
	metrics    *Metrics
}

// Option configures [NewSource] and [NewSourceBytes].
type Option func(*options)

type options struct {
	name       string
	lineEnding LineEnding
}

// WithName sets the logical name of the source, typically the path of the
// file it was read from, or something like "<stdin>".
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLineEnding declares the newline convention of the input text.
//
// The default is [LF]. Pass [Detect] to adopt whichever convention the
// first newline in the text uses.
func WithLineEnding(le LineEnding) Option {
	return func(o *options) { o.lineEnding = le }
}

// NewSource constructs a Source from already-decoded text.
//
// The text is normalized to bare '\n' separators according to the declared
// (or detected) line-ending convention, and the [Metrics] index is built
// eagerly. Returns [ErrLineEndingDetection] if [Detect] was requested and
// the text contains no newline.
func NewSource(text string, opts ...Option) (*Source, error) {
	o := options{name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}

	text, le, err := normalizeLineEndings(text, o.lineEnding)
	if err != nil {
		return nil, err
	}

	return &Source{
		name:       o.name,
		text:       text,
		lineEnding: le,
		metrics:    newMetrics(text),
	}, nil
}

// NewSourceBytes constructs a Source from raw bytes and the IANA name of
// their encoding (such as "UTF-8" or "ISO-8859-1"), then behaves like
// [NewSource].
//
// Returns [ErrEncoding] if the encoding name is unknown or the bytes are
// not valid in that encoding.
func NewSourceBytes(data []byte, encoding string, opts ...Option) (*Source, error) {
	text, err := decode(data, encoding)
	if err != nil {
		return nil, err
	}
	return NewSource(text, opts...)
}

func decode(data []byte, name string) (string, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", fmt.Errorf("%w: unknown encoding %q", ErrEncoding, name)
	}

	text, err := enc.NewDecoder().String(string(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	// Decoders substitute U+FFFD for byte sequences they cannot map rather
	// than failing, so its presence in the output marks undecodable input.
	if strings.ContainsRune(text, utf8.RuneError) && !strings.ContainsRune(string(data), utf8.RuneError) {
		return "", fmt.Errorf("%w: input is not valid %s", ErrEncoding, name)
	}
	return text, nil
}

// Name returns the logical name of this source.
func (s *Source) Name() string {
	return s.name
}

// Text returns the normalized text of this source. It contains no '\r'
// from the source's line-ending convention.
func (s *Source) Text() string {
	return s.text
}

// Len returns the length of the normalized text in bytes.
func (s *Source) Len() int {
	return len(s.text)
}

// LineEnding returns the newline convention the original text used. For
// sources constructed with [Detect], this is the detected convention.
func (s *Source) LineEnding() LineEnding {
	return s.lineEnding
}

// Metrics returns the offset↔line-column index for this source.
func (s *Source) Metrics() *Metrics {
	return s.metrics
}

// Range returns the range spanning the entirety of this source.
func (s *Source) Range() Range {
	return Range{src: s, begin: 0, end: len(s.text)}
}

// Key is a comparable identity for a [Source], suitable for use as a map
// key. Two sources with equal keys carry the same name and text, though
// position values still compare by Source pointer identity.
type Key struct {
	Name, Text string
}

// Key returns this source's content identity.
func (s *Source) Key() Key {
	return Key{Name: s.name, Text: s.text}
}

// String implements [fmt.Stringer].
func (s *Source) String() string {
	return s.name
}
