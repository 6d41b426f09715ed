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
	"testing"
)

func TestToken_hooks(t *testing.T) {
	t.Parallel()

	var startFired, extendFired, endFired bool

	tok := NewToken(NewCoordinate(0, 1, 0, 0, 0), "x", nil)
	tok.SetHooks(Hooks{
		OnBranchStart:  func() { startFired = true },
		OnBranchExtend: func() { extendFired = true },
		OnBranchEnd:    func() { endFired = true },
	})

	tok.fireStart()
	tok.fireExtend()
	tok.fireEnd()

	if !startFired || !extendFired || !endFired {
		t.Errorf("hooks did not all fire: start=%v extend=%v end=%v", startFired, extendFired, endFired)
	}
}

func TestToken_hooks_zeroValue(t *testing.T) {
	t.Parallel()

	tok := NewToken(NewCoordinate(0, 1, 0, 0, 0), "x", nil)

	// A Token with no hooks attached must not panic when fired.
	tok.fireStart()
	tok.fireExtend()
	tok.fireEnd()
}

func TestIndexInBranch(t *testing.T) {
	t.Parallel()

	root := NewRootPhrase("root")
	tree, err := Parse([]string{"ab"}, root)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	children := tree.Children()
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3 (open, literal, anchor)", len(children))
	}

	if idx := IndexInBranch(children[1]); idx != 1 {
		t.Errorf("IndexInBranch(literal) = %d, want 1", idx)
	}

	if idx := IndexInBranch(children[0]); idx != 0 {
		t.Errorf("IndexInBranch(open) = %d, want 0", idx)
	}
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	root := NewRootPhrase("root")
	tree, err := Parse([]string{"ab"}, root)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	children := tree.Children()

	right, ok := RightNeighbor(children[0])
	if !ok || right != children[1] {
		t.Errorf("RightNeighbor(open) = %v, %v; want children[1], true", right, ok)
	}

	left, ok := LeftNeighbor(children[1])
	if !ok || left != children[0] {
		t.Errorf("LeftNeighbor(literal) = %v, %v; want children[0], true", left, ok)
	}

	if _, ok := LeftNeighbor(children[0]); ok {
		t.Errorf("LeftNeighbor(first child) should have no left neighbor")
	}

	if _, ok := RightNeighbor(children[len(children)-1]); ok {
		t.Errorf("RightNeighbor(last child) should have no right neighbor")
	}
}
