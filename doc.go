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

// Package sourcetext is the positional backbone for compiler and tooling
// front-ends.
//
// The source package maps raw text into addressable positions: a Source
// owns one immutable, newline-normalized snapshot of text and an
// offset↔line-column index, and hands out Location and Range values with
// a full half-open span algebra. The report package renders diagnostics
// anchored to those positions as annotated snippets with caret
// indicators, and the interval package indexes values by source range
// for semantic lookups.
//
// Reading files and collecting diagnostics are deliberately left to the
// caller: the packages here consume already-decoded text and hand back
// rendered strings.
package sourcetext
