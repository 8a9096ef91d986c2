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

// Package golden provides a mechanism for managing golden test corpora:
// a directory of files that each define a test case, with expected
// outputs stored in sibling files.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test corpus. This is essentially a table-driven test
// whose table lives in the filesystem.
type Corpus struct {
	// The root of the corpus directory, relative to the test's working
	// directory (i.e., its package directory).
	Root string

	// An environment variable to check for whether to run in refresh
	// mode. Its value is a glob matched against test case paths; matching
	// cases have their expected outputs regenerated from the actual
	// results. Refresh mode always fails the test.
	Refresh string

	// The file extension (without a dot) of files that define a test
	// case, e.g. "yaml".
	Extension string

	// The extensions (without dots) of this corpus's outputs. Each test
	// case file foo.yaml has its expected outputs in foo.yaml.<ext>; a
	// missing file is an expected-empty output.
	Outputs []string
}

// Run executes the corpus. test is called once per test case and returns
// one result per entry of [Corpus.Outputs], each of which is compared
// against the corresponding golden file.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string) []string) {
	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob %s=%q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing expected outputs because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	var cases []string
	err := filepath.WalkDir(c.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			cases = append(cases, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: error while walking %q: %v", c.Root, err)
	}

	for _, path := range cases {
		t.Run(path, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading input %q: %v", path, err)
			}

			results := test(t, path, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: test returned %d results, want %d", len(results), len(c.Outputs))
			}

			doRefresh, _ := doublestar.Match(refresh, path)
			for i, extension := range c.Outputs {
				path := fmt.Sprint(path, ".", extension)

				if doRefresh {
					c.refresh(t, path, results[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: error while loading output %q: %v", path, err)
					continue
				}
				if d := diff(results[i], string(want)); d != "" {
					t.Errorf("golden: output mismatch for %q:\n%s", path, d)
				}
			}
		})
	}
}

func (c Corpus) refresh(t *testing.T, path, result string) {
	if result == "" {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("golden: error while deleting output %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(result), 0600); err != nil {
		t.Errorf("golden: error while writing output %q: %v", path, err)
	}
}

// diff returns a colorized unified diff of got against want, or "" if
// they are equal.
func diff(got, want string) string {
	if got == want {
		return ""
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}
