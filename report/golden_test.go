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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/sourcetext/internal/golden"
	"github.com/bufbuild/sourcetext/report"
	"github.com/bufbuild/sourcetext/source"
)

// renderCase is the YAML schema of the files under testdata/: a source
// text plus a chain of annotations, the first of which is the top-level
// one.
type renderCase struct {
	Text        string             `yaml:"text"`
	Name        string             `yaml:"name"`
	LineEnding  string             `yaml:"line_ending"`
	Annotations []renderAnnotation `yaml:"annotations"`
}

type renderAnnotation struct {
	Severity string  `yaml:"severity"`
	Message  string  `yaml:"message"`
	Range    *[2]int `yaml:"range"`
}

var severityNames = map[string]report.Severity{
	"note":  report.Note,
	"hint":  report.Hint,
	"warn":  report.Warn,
	"error": report.Error,
	"fatal": report.Fatal,
}

var lineEndingNames = map[string]source.LineEnding{
	"":       source.LF,
	"lf":     source.LF,
	"crlf":   source.CRLF,
	"detect": source.Detect,
}

func TestRender(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata",
		Refresh:   "SOURCETEXT_REFRESH",
		Extension: "yaml",
		Outputs:   []string{"txt"},
	}

	corpus.Run(t, func(t *testing.T, path, text string) []string {
		var c renderCase
		require.NoError(t, yaml.Unmarshal([]byte(text), &c))
		require.NotEmpty(t, c.Annotations, "%s: no annotations", path)

		ending, ok := lineEndingNames[c.LineEnding]
		require.True(t, ok, "%s: unknown line ending %q", path, c.LineEnding)
		opts := []source.Option{source.WithLineEnding(ending)}
		if c.Name != "" {
			opts = append(opts, source.WithName(c.Name))
		}
		src, err := source.NewSource(c.Text, opts...)
		require.NoError(t, err)

		var d *report.Diagnostic
		for _, a := range c.Annotations {
			severity, ok := severityNames[a.Severity]
			require.True(t, ok, "%s: unknown severity %q", path, a.Severity)

			annotation := report.Annotation{Message: a.Message, Severity: severity}
			if a.Range != nil {
				r, err := source.NewRange(src, a.Range[0], a.Range[1])
				require.NoError(t, err)
				annotation.Range = &r
			}
			if d == nil {
				d = report.NewDiagnostic(annotation)
			} else {
				d.AddCause(annotation)
			}
		}

		var p report.Printer
		return []string{p.DiagnosticString(d) + "\n"}
	})
}
