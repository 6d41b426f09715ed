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

// Hooks are synchronous, no-return lifecycle callbacks a Maker may
// attach to a Token it constructs. They let derived phrase kinds
// observe tree construction without Go's lack of subtype dispatch
// getting in the way: a zero-value Hooks is silently a no-op.
//
// Hooks must not mutate the containing Branch's child stack beyond the
// Token they are attached to.
type Hooks struct {
	// OnBranchStart fires when the Token is the opening NodeToken of a
	// newly entered Branch.
	OnBranchStart func()

	// OnBranchExtend fires when the Token is appended as literal filler
	// inside a Branch.
	OnBranchExtend func()

	// OnBranchEnd fires when the Token is the closing NodeToken of a
	// Branch.
	OnBranchEnd func()
}

// Node is implemented by every element a Branch's child stack may
// hold: *Token, *NodeToken, and *Branch. All three embed Token, so the
// single unexported method below is promoted automatically; callers
// never implement Node themselves.
type Node interface {
	parentBranch() *Branch
}

// Token is a leaf span: matched or literal text with coordinates and a
// non-owning back-reference to its owning Branch.
type Token struct {
	Coordinate

	// Content is the literal or matched text this Token spans.
	Content string

	// Parent is the Branch that owns this Token. Nil only for a
	// RootBranch's own embedded Token, which has no owner.
	Parent *Branch

	label string
	hooks Hooks
}

// NewToken constructs a plain literal Token. Derived Maker
// implementations use this (or NewNodeToken) to build the tokens they
// emit, then call SetHooks to attach lifecycle callbacks.
func NewToken(c Coordinate, content string, parent *Branch) *Token {
	return &Token{Coordinate: c, Content: content, Parent: parent, label: "T"}
}

func (t *Token) parentBranch() *Branch { return t.Parent }

// SetHooks attaches lifecycle hooks to the Token and returns it for
// chaining.
func (t *Token) SetHooks(h Hooks) *Token {
	t.hooks = h
	return t
}

// Label returns the short tag used to distinguish tokens in rendered
// output ("T" for a literal, "N" for a boundary marker, "B" for a
// branch, with "R"-prefixed variants for the root's own tokens).
func (t *Token) Label() string { return t.label }

func (t *Token) fireStart() {
	if t.hooks.OnBranchStart != nil {
		t.hooks.OnBranchStart()
	}
}

func (t *Token) fireExtend() {
	if t.hooks.OnBranchExtend != nil {
		t.hooks.OnBranchExtend()
	}
}

func (t *Token) fireEnd() {
	if t.hooks.OnBranchEnd != nil {
		t.hooks.OnBranchEnd()
	}
}

// NodeToken is a Token specialization marking a branch boundary: either
// the opening or the closing edge of a Branch's span. Which one it is
// follows from its position in the owning Branch's child stack (first
// element is always the opener), not from any field on NodeToken
// itself.
type NodeToken struct {
	Token
}

// NewNodeToken constructs a boundary-marker NodeToken.
func NewNodeToken(c Coordinate, content string, parent *Branch) *NodeToken {
	return &NodeToken{Token{Coordinate: c, Content: content, Parent: parent, label: "N"}}
}

// IndexInBranch returns n's position in its parent Branch's child
// stack, or -1 if n has no parent (the root's own embedded token) or
// is not found.
//
// n must be the same Node value held in the parent's child stack (for
// example one returned by Branch.Children or Branch.Linear); comparing
// a freshly-embedded Token field against its own NodeToken/Branch
// wrapper would never match, since Go interface equality compares
// dynamic type as well as value.
func IndexInBranch(n Node) int {
	p := n.parentBranch()
	if p == nil {
		return -1
	}

	for i, c := range p.children {
		if c == n {
			return i
		}
	}

	return -1
}

// RightNeighbor returns the sibling immediately after n in its parent
// Branch's child stack.
func RightNeighbor(n Node) (Node, bool) {
	p := n.parentBranch()
	if p == nil {
		return nil, false
	}

	i := IndexInBranch(n)
	if i < 0 || i+1 >= len(p.children) {
		return nil, false
	}

	return p.children[i+1], true
}

// LeftNeighbor returns the sibling immediately before n in its parent
// Branch's child stack.
func LeftNeighbor(n Node) (Node, bool) {
	p := n.parentBranch()
	if p == nil {
		return nil, false
	}

	i := IndexInBranch(n)
	if i <= 0 {
		return nil, false
	}

	return p.children[i-1], true
}
