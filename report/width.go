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
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the width every tabstop renders as.
const TabstopWidth int = 4

// stringWidth calculates the rendered width of text if placed at the
// given column, expanding each tab to the next tabstop and measuring
// everything else with uniseg. This keeps indicator lines aligned under
// source lines that contain tabs or wide runes.
//
// If out is non-nil, the text is also written to it with tabs expanded
// into spaces.
func stringWidth(column int, text string, out *writer) int {
	// We can't just use uniseg.StringWidth, because that doesn't respect
	// tabstops.
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		next := text
		if nextTab >= 0 {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		column += uniseg.StringWidth(next)
		if out != nil {
			out.WriteString(next)
		}

		if nextTab >= 0 {
			tab := TabstopWidth - column%TabstopWidth
			column += tab
			if out != nil {
				out.WriteSpaces(tab)
			}
		}
	}
	return column
}
