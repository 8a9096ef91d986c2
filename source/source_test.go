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

package source_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/sourcetext/source"
)

func TestNewSource(t *testing.T) {
	t.Parallel()

	src, err := source.NewSource("abc\ndef\nghi")
	require.NoError(t, err)
	assert.Equal(t, source.DefaultName, src.Name())
	assert.Equal(t, "abc\ndef\nghi", src.Text())
	assert.Equal(t, 11, src.Len())
	assert.Equal(t, source.LF, src.LineEnding())

	src, err = source.NewSource("abc", source.WithName("foo.x"))
	require.NoError(t, err)
	assert.Equal(t, "foo.x", src.Name())
	assert.Equal(t, "foo.x", src.String())
}

func TestNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		mode source.LineEnding
		want string
		ends source.LineEnding
	}{
		{name: "lf-noop", text: "a\nb\n", mode: source.LF, want: "a\nb\n", ends: source.LF},
		{name: "crlf", text: "a\r\nb\r\n", mode: source.CRLF, want: "a\nb\n", ends: source.CRLF},
		{name: "detect-lf", text: "a\nb", mode: source.Detect, want: "a\nb", ends: source.LF},
		{name: "detect-crlf", text: "a\r\nb", mode: source.Detect, want: "a\nb", ends: source.CRLF},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			src, err := source.NewSource(test.text, source.WithLineEnding(test.mode))
			require.NoError(t, err)
			assert.Equal(t, test.want, src.Text())
			assert.Equal(t, test.ends, src.LineEnding())
			assert.NotContains(t, src.Text(), "\r")

			// Normalization preserves the logical line count.
			assert.Equal(t,
				strings.Count(test.text, "\n"),
				strings.Count(src.Text(), "\n"))
		})
	}
}

func TestDetectFailure(t *testing.T) {
	t.Parallel()

	_, err := source.NewSource("no newline here", source.WithLineEnding(source.Detect))
	assert.ErrorIs(t, err, source.ErrLineEndingDetection)

	_, err = source.NewSource("", source.WithLineEnding(source.Detect))
	assert.ErrorIs(t, err, source.ErrLineEndingDetection)
}

func TestNewSourceBytes(t *testing.T) {
	t.Parallel()

	src, err := source.NewSourceBytes([]byte("caf\xc3\xa9\n"), "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "café\n", src.Text())

	// 0xE9 is é in Latin-1.
	src, err = source.NewSourceBytes([]byte("caf\xe9\n"), "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "café\n", src.Text())

	_, err = source.NewSourceBytes([]byte("caf\xe9\n"), "UTF-8")
	assert.ErrorIs(t, err, source.ErrEncoding)

	_, err = source.NewSourceBytes([]byte("abc"), "not-a-real-encoding")
	assert.ErrorIs(t, err, source.ErrEncoding)
}

func TestKey(t *testing.T) {
	t.Parallel()

	a, err := source.NewSource("abc", source.WithName("a"))
	require.NoError(t, err)
	b, err := source.NewSource("abc", source.WithName("a"))
	require.NoError(t, err)
	c, err := source.NewSource("abc", source.WithName("c"))
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestWholeRange(t *testing.T) {
	t.Parallel()

	src, err := source.NewSource("abc\ndef")
	require.NoError(t, err)

	whole := src.Range()
	begin, end := whole.Offsets()
	assert.Equal(t, 0, begin)
	assert.Equal(t, 7, end)
	assert.Equal(t, "abc\ndef", whole.Text())
}
