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
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/bufbuild/sourcetext/source"
)

// Options configures how the [Printer] renders annotations of one
// severity.
type Options struct {
	// Indent is the number of spaces to the left of the line number.
	Indent int
	// ShowLineNumbers renders a right-justified line number before each
	// source line.
	ShowLineNumbers bool
	// ShowGutter renders GutterChar between the line number and the
	// source text.
	ShowGutter bool
	// GutterChar is the gutter character, '|' by default.
	GutterChar rune
	// Margin is the number of spaces between the gutter and the first
	// source character.
	Margin int
	// ShowIndicator renders an indicator line with IndicatorChar under
	// the annotated span of each source line.
	ShowIndicator bool
	// IndicateLeadingWhitespace extends the indicator over leading
	// whitespace within the annotated span. Off by default.
	IndicateLeadingWhitespace bool
	// IndicatorChar is the indicator character, '^' by default.
	IndicatorChar rune
	// ShowHeader renders the "SEVERITY(range): message" header line.
	ShowHeader bool
	// BlankAfterHeader inserts a blank line between the header and the
	// source excerpt.
	BlankAfterHeader bool
	// ShowSource renders the source excerpt at all.
	ShowSource bool
}

// DefaultOptions returns the rendering defaults: four spaces of indent,
// line numbers, a '|' gutter with a one-space margin, a '^' indicator
// that skips leading whitespace, and a header followed by a blank line.
func DefaultOptions() Options {
	return Options{
		Indent:           4,
		ShowLineNumbers:  true,
		ShowGutter:       true,
		GutterChar:       '|',
		Margin:           1,
		ShowIndicator:    true,
		IndicatorChar:    '^',
		ShowHeader:       true,
		BlankAfterHeader: true,
		ShowSource:       true,
	}
}

// Printer renders diagnostics as human-readable source snippets: each
// annotated range is shown as its full source lines, line-numbered and
// gutter-decorated, with carets under exactly the annotated span on each
// physical line.
//
// The zero value renders every severity with [DefaultOptions].
type Printer struct {
	// Options overrides rendering options per severity. Severities with
	// no entry use [DefaultOptions].
	Options map[Severity]Options
}

func (p *Printer) options(s Severity) Options {
	if opts, ok := p.Options[s]; ok {
		return opts
	}
	return DefaultOptions()
}

// Diagnostic renders each annotation of d in effect-to-cause order,
// separated by blank lines, and writes the result to out.
func (p *Printer) Diagnostic(out io.Writer, d *Diagnostic) error {
	w := &writer{out: out}
	first := true
	for a := range d.All() {
		if !first {
			w.WriteString("\n\n")
		}
		first = false
		p.annotation(w, a)
	}
	return w.Flush()
}

// DiagnosticString renders d to a string.
func (p *Printer) DiagnosticString(d *Diagnostic) string {
	var buf strings.Builder
	_ = p.Diagnostic(&buf, d)
	return buf.String()
}

// Annotation renders a single annotation to out.
func (p *Printer) Annotation(out io.Writer, a Annotation) error {
	w := &writer{out: out}
	p.annotation(w, a)
	return w.Flush()
}

// AnnotationString renders a single annotation to a string.
func (p *Printer) AnnotationString(a Annotation) string {
	var buf strings.Builder
	_ = p.Annotation(&buf, a)
	return buf.String()
}

func (p *Printer) annotation(w *writer, a Annotation) {
	opts := p.options(a.Severity)

	if opts.ShowHeader {
		p.header(w, a)
	}
	if a.Range == nil || !opts.ShowSource {
		return
	}
	if opts.ShowHeader {
		if opts.BlankAfterHeader {
			w.WriteString("\n")
		}
		w.WriteString("\n")
	}
	p.source(w, a, opts)
}

// header emits "SEVERITY(name line:col-line:col): message", or
// "SEVERITY: message" for annotations without a range.
func (p *Printer) header(w *writer, a Annotation) {
	if a.Range == nil {
		fmt.Fprintf(w, "%v: %s", a.Severity, a.Message)
		return
	}
	fmt.Fprintf(w, "%v(%v): %s", a.Severity, a.Range, a.Message)
}

// source emits the annotated excerpt: every physical line the range
// touches, extended to full lines, each followed by an indicator line
// for its overlap with the original (not full-lines-extended) range.
func (p *Printer) source(w *writer, a Annotation, opts Options) {
	full := a.Range.FullLines()
	_, last := full.LineNumbers()
	numWidth := len(strconv.Itoa(last))

	first := true
	for line := range full.Lines() {
		if !first {
			w.WriteString("\n")
		}
		first = false

		p.sourceLine(w, line, opts, numWidth)

		indicate, ok := line.Intersect(*a.Range)
		if ok && opts.ShowIndicator {
			w.WriteString("\n")
			p.indicatorLine(w, indicate, line, opts, numWidth)
		}
	}
}

func (p *Printer) sourceLine(w *writer, line source.Line, opts Options, numWidth int) {
	w.WriteSpaces(opts.Indent)
	if opts.ShowLineNumbers {
		num := strconv.Itoa(line.Number())
		w.WriteSpaces(numWidth - len(num))
		w.WriteString(num)
	}
	if opts.ShowGutter {
		w.WriteString(" ")
		w.WriteString(string(opts.GutterChar))
	}
	w.WriteSpaces(opts.Margin)
	stringWidth(0, line.Text(), w)
}

// indicatorLine emits carets under exactly the intersected span. The
// prefix mirrors the source line's, with a blank gap in place of the
// line number.
func (p *Printer) indicatorLine(w *writer, indicate source.Range, line source.Line, opts Options, numWidth int) {
	w.WriteSpaces(opts.Indent)
	if opts.ShowLineNumbers {
		w.WriteSpaces(numWidth)
	}
	if opts.ShowGutter {
		w.WriteString(" ")
		w.WriteString(string(opts.GutterChar))
	}
	w.WriteSpaces(opts.Margin)

	lineBegin, _ := line.Offsets()
	spanBegin, _ := indicate.Offsets()

	span := indicate.Text()
	if !opts.IndicateLeadingWhitespace {
		trimmed := strings.TrimLeftFunc(span, unicode.IsSpace)
		spanBegin += len(span) - len(trimmed)
		span = trimmed
	}

	text := line.Source().Text()
	pad := stringWidth(0, text[lineBegin:spanBegin], nil)
	w.WriteSpaces(pad)

	carets := stringWidth(pad, span, nil) - pad
	w.WriteString(strings.Repeat(string(opts.IndicatorChar), carets))
}
