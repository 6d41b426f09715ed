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

package simpleregex

import (
	"regexp"

	"github.com/ianlewis/regions"
)

// Phrase is a region bounded by two regexps: a start pattern that
// opens the branch and a stop pattern searched for in each subsequent
// step while the branch is active.
type Phrase struct {
	*regions.BasePhrase

	start, stop *regexp.Regexp
}

// New constructs a Phrase with the given diagnostic id, opening on the
// first match of start and closing on the first match of stop searched
// for in each row while the branch remains open.
func New(id any, start, stop *regexp.Regexp) *Phrase {
	p := &Phrase{start: start, stop: stop}
	p.BasePhrase = regions.NewBasePhrase(p, id)

	return p
}

// Starts implements regions.Phrase.
func (p *Phrase) Starts(remainingRow string, rowN, rowViewpoint, absViewpoint int, active *regions.Branch) *regions.Branch {
	loc := p.start.FindStringIndex(remainingRow)
	if loc == nil {
		return nil
	}

	b := regions.NewBranch(loc[0], loc[1], remainingRow[loc[0]:loc[1]], rowN, rowViewpoint, absViewpoint, active, p)
	b.SetEnder(regions.EnderFunc(func(remainingRow string, rowN, rowViewpoint, absViewpoint int) *regions.NodeToken {
		end := p.stop.FindStringIndex(remainingRow)
		if end == nil {
			return nil
		}

		c := regions.NewCoordinate(end[0], end[1], rowN, rowViewpoint, absViewpoint)

		return b.MakeNode(c, remainingRow[end[0]:end[1]])
	}))

	return b
}

// AtomPhrase is a region bounded by a single pattern: it opens on the
// first match and closes immediately, a zero-width boundary with no
// content of its own between open and close. Its Branch needs no
// custom Ender since a Branch with none set already closes immediately
// at offset zero. The close happens in the crawler step after the open,
// so an atom whose match consumes the last of the input stays open.
type AtomPhrase struct {
	*regions.BasePhrase

	pattern *regexp.Regexp
}

// NewAtom constructs an AtomPhrase with the given diagnostic id,
// matching pattern and closing immediately.
func NewAtom(id any, pattern *regexp.Regexp) *AtomPhrase {
	p := &AtomPhrase{pattern: pattern}
	p.BasePhrase = regions.NewBasePhrase(p, id)

	return p
}

// Starts implements regions.Phrase.
func (p *AtomPhrase) Starts(remainingRow string, rowN, rowViewpoint, absViewpoint int, active *regions.Branch) *regions.Branch {
	loc := p.pattern.FindStringIndex(remainingRow)
	if loc == nil {
		return nil
	}

	return regions.NewBranch(loc[0], loc[1], remainingRow[loc[0]:loc[1]], rowN, rowViewpoint, absViewpoint, active, p)
}

var consolePrompt = regexp.MustCompile(`>>>`)

// ConsoleLinePhrase opens on a ">>>" console prompt and runs to the
// end of its row. A row ending in a trailing backslash continues the
// console line onto the next row instead of closing, checked with
// endsWithContinuation. It masks the remainder of the row from sibling
// phrases competing to open in the same step by narrowing its
// NextSearchContent to the empty string, claiming the rest of the step
// for itself instead of competing on sub_phrases membership.
type ConsoleLinePhrase struct {
	*regions.BasePhrase
}

// NewConsoleLine constructs a ConsoleLinePhrase with the given
// diagnostic id.
func NewConsoleLine(id any) *ConsoleLinePhrase {
	p := &ConsoleLinePhrase{}
	p.BasePhrase = regions.NewBasePhrase(p, id)

	return p
}

// Starts implements regions.Phrase.
func (p *ConsoleLinePhrase) Starts(remainingRow string, rowN, rowViewpoint, absViewpoint int, active *regions.Branch) *regions.Branch {
	loc := consolePrompt.FindStringIndex(remainingRow)
	if loc == nil {
		return nil
	}

	b := regions.NewBranch(loc[0], loc[1], remainingRow[loc[0]:loc[1]], rowN, rowViewpoint, absViewpoint, active, p)
	b.SetNextSearchContent(func(string) string { return "" })
	b.SetEnder(regions.EnderFunc(func(remainingRow string, rowN, rowViewpoint, absViewpoint int) *regions.NodeToken {
		if endsWithContinuation(remainingRow) {
			return nil
		}

		end := len(remainingRow)
		c := regions.NewCoordinate(end, end, rowN, rowViewpoint, absViewpoint)

		return b.MakeNode(c, "")
	}))

	return b
}
