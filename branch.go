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

package regions

// Ender decides where an open Branch's region ends. The crawler calls
// Ends at most once per step while the branch is active.
type Ender interface {
	Ends(remainingRow string, rowN, rowViewpoint, absViewpoint int) *NodeToken
}

// EnderFunc adapts a function to the Ender interface.
type EnderFunc func(remainingRow string, rowN, rowViewpoint, absViewpoint int) *NodeToken

// Ends implements Ender.
func (f EnderFunc) Ends(remainingRow string, rowN, rowViewpoint, absViewpoint int) *NodeToken {
	return f(remainingRow, rowN, rowViewpoint, absViewpoint)
}

// Maker builds the tagged Token/NodeToken variants a Branch emits for
// its own boundaries and literal filler. The default Maker produces
// plain-tagged values; a RootBranch substitutes one that tags its
// direct children distinctly so callers can tell root-level literals
// apart from literals inside a nested phrase branch.
type Maker interface {
	MakeNode(c Coordinate, content string, parent *Branch) *NodeToken
	MakeToken(c Coordinate, content string, parent *Branch) *Token
}

type defaultMaker struct{}

func (defaultMaker) MakeNode(c Coordinate, content string, parent *Branch) *NodeToken {
	return NewNodeToken(c, content, parent)
}

func (defaultMaker) MakeToken(c Coordinate, content string, parent *Branch) *Token {
	return NewToken(c, content, parent)
}

// Branch is an opened region. It extends Token (it carries the
// coordinates of its own opening match) and owns an ordered child
// stack whose first element is always the opening NodeToken.
type Branch struct {
	Token

	// Phrase is the grammar rule this Branch was opened for.
	Phrase Phrase

	children []Node
	closed   bool

	ender Ender
	maker Maker
	// narrow implements NextSearchContent; nil defers to Phrase.
	narrow func(string) string
}

// NewBranch constructs a Branch spanning [matchRelStart, matchRelEnd)
// of remainingRow, parented under active. Its Ends, MakeNode, and
// MakeToken behave like the base contract (ends immediately at offset
// zero, plain-tagged tokens) until customized with SetEnder, SetMaker,
// or SetNextSearchContent. Derived phrase kinds call this from their
// Starts implementation.
func NewBranch(matchRelStart, matchRelEnd int, content string, rowN, rowViewpoint, absViewpoint int, active *Branch, phrase Phrase) *Branch {
	c := NewCoordinate(matchRelStart, matchRelEnd, rowN, rowViewpoint, absViewpoint)
	b := &Branch{
		Token:  Token{Coordinate: c, Content: content, Parent: active, label: "B"},
		Phrase: phrase,
		maker:  defaultMaker{},
	}
	b.children = []Node{b.maker.MakeNode(c, content, b)}

	return b
}

// SetEnder overrides how the Branch decides where its region ends.
func (b *Branch) SetEnder(e Ender) *Branch {
	b.ender = e
	return b
}

// SetMaker overrides how the Branch tags the tokens it emits.
func (b *Branch) SetMaker(m Maker) *Branch {
	b.maker = m
	return b
}

// SetNextSearchContent overrides how the Branch narrows the search
// text offered to sibling phrases competing to start in the same
// crawler step. By default the Branch defers to its Phrase's
// NextSearchContent.
func (b *Branch) SetNextSearchContent(f func(searchContent string) string) *Branch {
	b.narrow = f
	return b
}

// Ends reports where, if anywhere, this Branch's region closes within
// remainingRow. The base behavior (no Ender set) is to end immediately
// with a zero-width close at offset zero; this is the contract's
// sink behavior, used as-is by phrases that never need to stay open.
func (b *Branch) Ends(remainingRow string, rowN, rowViewpoint, absViewpoint int) *NodeToken {
	if b.ender != nil {
		return b.ender.Ends(remainingRow, rowN, rowViewpoint, absViewpoint)
	}

	return b.maker.MakeNode(NewCoordinate(0, 0, rowN, rowViewpoint, absViewpoint), "", b)
}

// NextSearchContent narrows the search text used by subsequent
// siblings' start probes in the same crawler step.
func (b *Branch) NextSearchContent(searchContent string) string {
	if b.narrow != nil {
		return b.narrow(searchContent)
	}

	if b.Phrase != nil {
		return b.Phrase.NextSearchContent(searchContent)
	}

	return searchContent
}

// MakeNode builds a tagged NodeToken owned by this Branch.
func (b *Branch) MakeNode(c Coordinate, content string) *NodeToken {
	return b.maker.MakeNode(c, content, b)
}

// MakeToken builds a tagged literal Token owned by this Branch.
func (b *Branch) MakeToken(c Coordinate, content string) *Token {
	return b.maker.MakeToken(c, content, b)
}

// ExtendBranch appends a literal Token to the child stack and returns
// it. Callers are responsible for firing its OnBranchExtend hook.
func (b *Branch) ExtendBranch(c Coordinate, content string) *Token {
	t := b.MakeToken(c, content)
	b.children = append(b.children, t)

	return t
}

// Children returns the Branch's child stack in source order: the
// opening NodeToken, then literal Tokens and nested Branches, and
// finally a closing NodeToken once the Branch is closed.
func (b *Branch) Children() []Node { return b.children }

// StartNode returns the opening NodeToken, always the first child.
func (b *Branch) StartNode() *NodeToken {
	return b.children[0].(*NodeToken)
}

// EndNode returns the closing NodeToken and true if the Branch is
// closed, or nil and false if it is still open.
func (b *Branch) EndNode() (*NodeToken, bool) {
	if !b.closed {
		return nil, false
	}

	return b.children[len(b.children)-1].(*NodeToken), true
}

// IsOpen reports whether the Branch's last child is not yet a closing
// NodeToken.
func (b *Branch) IsOpen() bool { return !b.closed }

// Linear performs an in-order traversal of the Branch, yielding every
// leaf Token and NodeToken in source order with nested Branches
// expanded away (never yielded themselves).
func (b *Branch) Linear() []Node {
	var out []Node

	for _, c := range b.children {
		if sub, ok := c.(*Branch); ok {
			out = append(out, sub.Linear()...)
		} else {
			out = append(out, c)
		}
	}

	return out
}

// RootBranch is the distinguished top-level Branch. It has no parent,
// never closes via Ends (which always returns nil), and tags its
// direct children with "R"-prefixed labels so literals directly under
// the root are distinguishable from literals nested inside a phrase
// branch.
type RootBranch struct {
	Branch
}

type rootMaker struct{}

func (rootMaker) MakeNode(c Coordinate, content string, parent *Branch) *NodeToken {
	return &NodeToken{Token{Coordinate: c, Content: content, Parent: parent, label: "RN"}}
}

func (rootMaker) MakeToken(c Coordinate, content string, parent *Branch) *Token {
	return &Token{Coordinate: c, Content: content, Parent: parent, label: "RT"}
}

func newRootBranch(root *RootPhrase) *RootBranch {
	rb := &RootBranch{}
	zero := NewCoordinate(0, 0, 0, 0, 0)
	rb.Branch = Branch{
		Token:  Token{Coordinate: zero, Content: "", Parent: nil, label: "RB"},
		Phrase: root,
		maker:  rootMaker{},
		ender:  EnderFunc(func(string, int, int, int) *NodeToken { return nil }),
	}
	rb.Branch.children = []Node{rb.Branch.maker.MakeNode(zero, "", &rb.Branch)}

	return rb
}
