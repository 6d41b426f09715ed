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

import (
	"context"
	"errors"
)

// errInputExhausted is the crawler's internal termination sentinel. It
// is never returned from Parser.Parse.
var errInputExhausted = errors.New("regions: input exhausted")

// Parser drives region discovery over a sequence of input rows. Each
// step asks the active branch's allowed children whether they begin
// here, asks the active branch whether it ends here, picks the
// earliest competing event, and applies it, advancing across rows
// until input is exhausted.
//
// Parser is strictly single-threaded and synchronous; a step never
// blocks on I/O.
type Parser struct {
	root *RootPhrase

	// Strict, when true, synthesizes zero-width closes for branches
	// still open at EOF instead of leaving them open. Off by default,
	// matching the base contract that unbalanced regions are reported
	// only by inspection of the tree.
	Strict bool

	// Debug, when true, panics if a step fails to advance the absolute
	// offset, the row index, or the active branch's depth. Off by
	// default; this is a development aid for pathological phrase graphs,
	// not part of the release contract.
	Debug bool
}

// NewParser constructs a Parser that matches phrases reachable from
// root.
func NewParser(root *RootPhrase) *Parser {
	return &Parser{root: root}
}

// crawlerState is the mutable cursor the crawler advances one step at a
// time: the unconsumed suffix of the current row, the rows still to
// come, the current row/column/absolute position, and the branch
// currently accepting children.
type crawlerState struct {
	remainingRow string
	restRows     []string
	rowN         int
	rowViewpoint int
	absViewpoint int
	active       *Branch
}

// Parse drives the crawler over rows and returns the resulting tree
// rooted at a RootBranch. The caller determines whether rows include
// their own line terminators; each row string is treated opaquely and
// absolute offsets are the sum of lengths as supplied.
//
// An empty rows slice returns a RootBranch with only its opening
// NodeToken. Parsing can be canceled through ctx; canceling does not
// unwind any partially built tree, it simply stops advancing the
// crawler and returns ctx.Err() alongside the tree built so far.
func (p *Parser) Parse(ctx context.Context, rows []string) (*RootBranch, error) {
	root := newRootBranch(p.root)

	if len(rows) == 0 {
		return root, nil
	}

	st := &crawlerState{
		remainingRow: rows[0],
		restRows:     rows[1:],
		active:       &root.Branch,
	}

	for {
		select {
		case <-ctx.Done():
			return root, ctx.Err()
		default:
		}

		if err := p.step(st); err != nil {
			if errors.Is(err, errInputExhausted) {
				break
			}

			return root, err
		}
	}

	p.finalize(root)

	if p.Strict {
		closeOpenBranches(&root.Branch)
	}

	return root, nil
}

func (p *Parser) step(st *crawlerState) error {
	var beforeRow, beforeAbs, beforeDepth int
	if p.Debug {
		beforeRow, beforeAbs, beforeDepth = st.rowN, st.absViewpoint, branchDepth(st.active)
	}

	var candidates []*Branch

	searchContent := st.remainingRow
	for phrase := range st.active.Phrase.SubPhrases() {
		cand := phrase.Starts(searchContent, st.rowN, st.rowViewpoint, st.absViewpoint, st.active)
		if cand == nil {
			continue
		}

		candidates = append(candidates, cand)
		searchContent = cand.NextSearchContent(searchContent)
	}

	closer := st.active.Ends(searchContent, st.rowN, st.rowViewpoint, st.absViewpoint)

	var err error

	switch {
	case len(candidates) > 0:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.MatchRelStart() < best.MatchRelStart() {
				best = c
			}
		}

		if closer != nil && closer.MatchRelStart() < best.MatchRelStart() {
			err = p.closeActive(st, closer)
		} else {
			err = p.openChild(st, best)
		}
	case closer != nil:
		err = p.closeActive(st, closer)
	default:
		err = p.literalFill(st)
	}

	if p.Debug && err == nil {
		if st.rowN == beforeRow && st.absViewpoint == beforeAbs && branchDepth(st.active) == beforeDepth {
			panic("regions: crawler step made no progress")
		}
	}

	return err
}

// openChild appends any literal prefix before the opener, pushes best
// onto the active branch's child stack, makes it the new active
// branch, and advances the cursor past the opener.
func (p *Parser) openChild(st *crawlerState, best *Branch) error {
	original := st.remainingRow
	start, end := best.MatchRelStart(), best.MatchRelEnd()

	if start > 0 {
		c := NewCoordinate(0, start, st.rowN, st.rowViewpoint, st.absViewpoint)
		st.active.ExtendBranch(c, original[:start]).fireExtend()
	}

	best.Parent = st.active
	st.active.children = append(st.active.children, best)
	st.active = best

	st.remainingRow = original[end:]
	st.absViewpoint += end

	var advErr error

	if st.remainingRow == "" {
		advErr = p.nextRow(st)
	} else {
		st.rowViewpoint += end
	}

	if advErr != nil {
		return advErr
	}

	// Hooks fire after row state has already advanced to the next step,
	// so a final opener that exhausts the input never fires its
	// OnBranchStart hook.
	best.StartNode().fireStart()

	return nil
}

// closeActive appends any literal prefix before the closer, closes the
// active branch, and makes its parent the new active branch.
func (p *Parser) closeActive(st *crawlerState, closer *NodeToken) error {
	original := st.remainingRow
	start, end := closer.MatchRelStart(), closer.MatchRelEnd()

	if start > 0 {
		c := NewCoordinate(0, start, st.rowN, st.rowViewpoint, st.absViewpoint)
		st.active.ExtendBranch(c, original[:start]).fireExtend()
	}

	closing := st.active
	closer.Parent = closing
	closing.children = append(closing.children, closer)
	closing.closed = true
	st.active = closing.Parent

	st.remainingRow = original[end:]
	st.absViewpoint += end

	var advErr error

	if st.remainingRow == "" {
		advErr = p.nextRow(st)
	} else {
		st.rowViewpoint += end
	}

	if advErr != nil {
		return advErr
	}

	closer.fireEnd()

	return nil
}

// literalFill is taken when neither a child opens nor the active
// branch ends anywhere in the remaining row: the whole row becomes a
// literal Token.
func (p *Parser) literalFill(st *crawlerState) error {
	content := st.remainingRow
	c := NewCoordinate(0, len(content), st.rowN, st.rowViewpoint, st.absViewpoint)
	tok := st.active.ExtendBranch(c, content)
	st.absViewpoint += len(content)
	st.remainingRow = ""

	tok.fireExtend()

	return p.nextRow(st)
}

func (p *Parser) nextRow(st *crawlerState) error {
	if len(st.restRows) == 0 {
		return errInputExhausted
	}

	st.remainingRow = st.restRows[0]
	st.restRows = st.restRows[1:]
	st.rowN++
	st.rowViewpoint = 0

	return nil
}

// finalize descends from the root along the last child whenever that
// child is a Branch, then appends a zero-width terminal NodeToken to
// the root anchored at the last leaf of the deepest branch on that
// rightmost chain.
func (p *Parser) finalize(root *RootBranch) {
	b := &root.Branch

	for {
		last := b.children[len(b.children)-1]

		sub, ok := last.(*Branch)
		if !ok {
			break
		}

		b = sub
	}

	end := coordinateOf(b.children[len(b.children)-1])
	c := NewCoordinate(end.MatchRelEnd(), end.MatchRelEnd(), end.RowN(), end.RowViewpoint(), end.AbsViewpoint())
	anchor := root.MakeNode(c, "")
	root.children = append(root.children, anchor)
}

// closeOpenBranches implements Parser.Strict: it walks the tree and
// synthesizes a zero-width close for every branch still open at EOF,
// depth-first so a parent's own end anchor reflects its children's
// already-synthesized closes.
func closeOpenBranches(b *Branch) {
	for _, c := range b.children {
		if sub, ok := c.(*Branch); ok {
			closeOpenBranches(sub)
		}
	}

	if b.closed {
		return
	}

	if _, isRoot := b.Phrase.(*RootPhrase); isRoot {
		return
	}

	last := b.children[len(b.children)-1]
	for {
		sub, ok := last.(*Branch)
		if !ok {
			break
		}

		last = sub.children[len(sub.children)-1]
	}

	end := coordinateOf(last)
	c := NewCoordinate(end.MatchRelEnd(), end.MatchRelEnd(), end.RowN(), end.RowViewpoint(), end.AbsViewpoint())
	closer := b.MakeNode(c, "")
	b.children = append(b.children, closer)
	b.closed = true
}

func coordinateOf(n Node) Coordinate {
	switch v := n.(type) {
	case *Token:
		return v.Coordinate
	case *NodeToken:
		return v.Coordinate
	case *Branch:
		return v.Coordinate
	default:
		panic("regions: unknown node type")
	}
}

func branchDepth(b *Branch) int {
	n := 0
	for b.Parent != nil {
		n++
		b = b.Parent
	}

	return n
}
