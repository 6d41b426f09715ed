// Copyright 2023 Google LLC
// Copyright 2025 Ian Lewis
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

// Package simpleregex provides regexp-bounded Phrase kinds for the
// regions crawler: a two-pattern open/close region, a single-pattern
// zero-width atom, and a console-line region that can span rows
// through a trailing backslash continuation.
package simpleregex

import (
	"io"
	"strings"

	"github.com/ianlewis/runeio"
)

// endsWithContinuation reports whether content ends with a trailing
// backslash, peeking one rune at a time through a runeio.RuneReader
// rather than indexing the row by byte offset, so multi-byte runes near
// the end of the row are never split. Only the last rune is tested, so
// a doubled backslash at the end also counts as a continuation.
func endsWithContinuation(content string) bool {
	r := runeio.NewReader(strings.NewReader(content))

	var last rune

	var sawAny bool

	for {
		rn, _, err := r.ReadRune()
		if err != nil {
			if err == io.EOF { //nolint:errorlint // runeio returns io.EOF directly, not wrapped
				break
			}

			return false
		}

		last = rn
		sawAny = true
	}

	return sawAny && last == '\\'
}
