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

package regions

import (
	"fmt"
	"regexp"
)

// regexPhrase is a minimal two-pattern derived phrase (start/stop
// regexps) used only by these examples to exercise the crawler without
// a dependency on the simpleregex package. The real derived phrase
// kinds live in regions/simpleregex and follow the same shape.
type regexPhrase struct {
	*BasePhrase

	start, stop *regexp.Regexp
}

func newRegexPhrase(id any, start, stop string) *regexPhrase {
	p := &regexPhrase{start: regexp.MustCompile(start), stop: regexp.MustCompile(stop)}
	p.BasePhrase = NewBasePhrase(p, id)

	return p
}

func (p *regexPhrase) Starts(remainingRow string, rowN, rowViewpoint, absViewpoint int, active *Branch) *Branch {
	loc := p.start.FindStringIndex(remainingRow)
	if loc == nil {
		return nil
	}

	b := NewBranch(loc[0], loc[1], remainingRow[loc[0]:loc[1]], rowN, rowViewpoint, absViewpoint, active, p)
	b.SetEnder(EnderFunc(func(remainingRow string, rowN, rowViewpoint, absViewpoint int) *NodeToken {
		end := p.stop.FindStringIndex(remainingRow)
		if end == nil {
			return nil
		}

		return b.MakeNode(NewCoordinate(end[0], end[1], rowN, rowViewpoint, absViewpoint), remainingRow[end[0]:end[1]])
	}))

	return b
}

func printLinear(tree *RootBranch) {
	for _, n := range tree.Linear() {
		switch v := n.(type) {
		case *Token:
			if v.Content != "" {
				fmt.Println(v.Content)
			}
		case *NodeToken:
			if v.Content != "" {
				fmt.Println(v.Content)
			}
		}
	}
}

// Example_noSubPhrases shows a bare root with no sub-phrases: every row
// becomes a literal, and the tree is just open/literal.../EOF anchor.
func Example_noSubPhrases() {
	root := NewRootPhrase("root")

	tree, err := Parse([]string{"abc", "def"}, root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	printLinear(tree)
	// Output:
	// abc
	// def
}

// Example_singleRegionPhrase shows a non-recursive region phrase
// opening on "(" and closing on ")".
func Example_singleRegionPhrase() {
	root := NewRootPhrase("root")
	p := newRegexPhrase("P", `\(`, `\)`)
	root.AddPhrase(p)

	tree, err := Parse([]string{"(x)"}, root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	printLinear(tree)
	// Output:
	// (
	// x
	// )
}

// Example_recursiveRegionPhrase shows the same phrase recursing into
// itself via AddSelf, nesting one region inside another.
func Example_recursiveRegionPhrase() {
	root := NewRootPhrase("root")
	p := newRegexPhrase("P", `\(`, `\)`)
	p.AddSelf()
	root.AddPhrase(p)

	tree, err := Parse([]string{"((y))"}, root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	printLinear(tree)
	// Output:
	// (
	// (
	// y
	// )
	// )
}

// Example_multiRowRegion shows a region phrase spanning a row boundary:
// the branch opens in the first row and closes in the second.
func Example_multiRowRegion() {
	root := NewRootPhrase("root")
	p := newRegexPhrase("P", `\{`, `\}`)
	root.AddPhrase(p)

	tree, err := Parse([]string{"a{b", "c}d"}, root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	printLinear(tree)
	// Output:
	// a
	// {
	// b
	// c
	// }
	// d
}

// Example_nextSearchContentMasksSiblings shows a phrase Q that masks
// the remainder of the row for sibling start probes in the same step
// by returning "" from NextSearchContent, so no other opener can
// compete once Q has claimed the step.
func Example_nextSearchContentMasksSiblings() {
	root := NewRootPhrase("root")

	q := newRegexPhrase("Q", `>>>`, `$^`) // stop never matches; Q spans to EOF via literal fill
	q.BasePhrase.self = q

	maskingQ := &maskingPhrase{regexPhrase: q}
	maskingQ.BasePhrase.self = maskingQ

	other := newRegexPhrase("other", `x`, `x`)

	root.AddPhrase(maskingQ)
	root.AddPhrase(other)

	tree, err := Parse([]string{">>>x"}, root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	printLinear(tree)
	// Output:
	// >>>
	// x
}

// maskingPhrase wraps regexPhrase and overrides NextSearchContent to
// mask the row for sibling probes in the step that opens it, the same
// pattern ConsoleLinePhrase uses in regions/simpleregex.
type maskingPhrase struct {
	*regexPhrase
}

func (p *maskingPhrase) Starts(remainingRow string, rowN, rowViewpoint, absViewpoint int, active *Branch) *Branch {
	b := p.regexPhrase.Starts(remainingRow, rowN, rowViewpoint, absViewpoint, active)
	if b == nil {
		return nil
	}

	b.SetNextSearchContent(func(string) string { return "" })

	return b
}
