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

// Package report models diagnostics over source text and renders them as
// annotated, caret-indicated snippets.
//
// An [Annotation] is a [source.Range] with a message and a [Severity]: a
// single compiler error, warning or note. A [Diagnostic] chains causally
// related annotations from symptomatic effect down to root cause. The
// [Printer] renders either as line-numbered, gutter-decorated source
// excerpts with caret indicators under the offending text.
//
// This package never collects or aggregates diagnostics; producing them
// is the front-end's job and gathering them is the driver's.
package report

import (
	"fmt"
	"iter"

	"github.com/bufbuild/sourcetext/source"
)

// Severity classifies the importance of an [Annotation].
type Severity int8

const (
	// Note is for factual information that adds context.
	Note Severity = 1 + iota
	// Hint is for prose suggestions to the user.
	Hint
	// Warn is for something not strictly wrong but probably not ignorable.
	Warn
	// Error is for semantic constraint violations.
	Error
	// Fatal is for errors the front-end cannot continue past.
	Fatal
)

// String implements [fmt.Stringer].
func (s Severity) String() string {
	switch s {
	case Note:
		return "NOTE"
	case Hint:
		return "HINT"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return fmt.Sprintf("Severity(%d)", int8(s))
	}
}

// Severities lists every valid [Severity], for exhaustive per-severity
// configuration.
func Severities() []Severity {
	return []Severity{Note, Hint, Warn, Error, Fatal}
}

// Annotation is a source range annotated with a message and a severity.
//
// Range may be nil for messages not tied to any source text, such as
// "file too big"; such annotations render as a bare header.
type Annotation struct {
	Range    *source.Range
	Message  string
	Severity Severity
}

// Diagnostic is one logical problem in source code: a non-empty chain of
// causally related annotations, with the symptomatic effect first and the
// root cause last, similar to a stack trace.
type Diagnostic struct {
	top  Annotation
	rest []Annotation
}

// NewDiagnostic constructs a diagnostic from its top-level annotation.
func NewDiagnostic(top Annotation) *Diagnostic {
	return &Diagnostic{top: top}
}

// AddCause appends a causal annotation and returns d for chaining.
func (d *Diagnostic) AddCause(cause Annotation) *Diagnostic {
	d.rest = append(d.rest, cause)
	return d
}

// Len returns the total number of annotations in this diagnostic,
// including the top-level one.
func (d *Diagnostic) Len() int {
	return 1 + len(d.rest)
}

// Top returns the top-level annotation: the symptomatic effect.
func (d *Diagnostic) Top() Annotation {
	return d.top
}

// RootCause returns the deepest causal annotation, or the top-level
// annotation if no causes were added.
func (d *Diagnostic) RootCause() Annotation {
	if len(d.rest) > 0 {
		return d.rest[len(d.rest)-1]
	}
	return d.top
}

// Severity returns the top-level annotation's severity.
func (d *Diagnostic) Severity() Severity {
	return d.top.Severity
}

// All yields each annotation in effect-to-cause order, topmost first.
func (d *Diagnostic) All() iter.Seq[Annotation] {
	return func(yield func(Annotation) bool) {
		if !yield(d.top) {
			return
		}
		for _, a := range d.rest {
			if !yield(a) {
				return
			}
		}
	}
}
